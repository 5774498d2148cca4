package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adhillon192/Vue-Portfolio/internal/content"
	"github.com/adhillon192/Vue-Portfolio/internal/loader"
	"github.com/adhillon192/Vue-Portfolio/internal/page"
	"github.com/adhillon192/Vue-Portfolio/internal/query"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates all content without writing output",
	Long: `The check command loads every content collection, validates each document
against its collection's schema, and verifies the homepage has data for all of
its required sections. It prints one diagnostic per problem and exits non-zero
if anything fails, so it can gate publication in CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck()
	},
}

func runCheck() error {
	if _, err := os.Stat(appConfig.ContentDir); os.IsNotExist(err) {
		return fmt.Errorf("content directory '%s' not found", appConfig.ContentDir)
	}

	store := content.NewStore(os.DirFS(appConfig.ContentDir))
	site, err := query.Load(store, loader.New())
	if err != nil {
		return err
	}

	problems := 0
	for _, perr := range site.Errors() {
		fmt.Printf("  %s: %s\n", perr.Kind, perr)
		problems++
	}

	// A valid index document can still leave the homepage short of a
	// required section (e.g. no index file at all), so compose it too.
	data := map[string]interface{}{}
	if idx := site.Index(); idx != nil {
		data["hero"] = idx.Hero
		data["about"] = idx.About
	}
	if _, cerr := page.Compose(homePageSpec(), data); cerr != nil {
		fmt.Printf("  compose: %s\n", cerr)
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("content check failed: %d problem(s)", problems)
	}
	fmt.Printf("content OK: %d posts, %d projects\n", len(site.Posts()), len(site.Projects()))
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
