package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adhillon192/Vue-Portfolio/internal/config"
	"github.com/adhillon192/Vue-Portfolio/internal/content"
	"github.com/adhillon192/Vue-Portfolio/internal/loader"
	"github.com/adhillon192/Vue-Portfolio/internal/page"
	"github.com/adhillon192/Vue-Portfolio/internal/query"
	"github.com/adhillon192/Vue-Portfolio/internal/render"
)

const recentPostsOnHome = 3

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site from content, layouts, and static assets",
	Long: `The build command loads the content collections from './content/'
(homepage YAML, project entries, Markdown blog posts), validates each document
against its collection's schema, composes the page models, renders them
through the layouts in './layouts/', copies static assets from './static/',
and writes the site to the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig)
	},
}

// siteInfo is the site-wide half of every template's data context.
type siteInfo struct {
	Title   string
	BaseURL string
}

// pageContext is the data every layout executes against.
type pageContext struct {
	Site siteInfo
	Page *page.PageModel
}

// aboutView is the about section after paragraph splitting.
type aboutView struct {
	Title      string
	Paragraphs []string
}

func runBuildProcess(cfg config.Config) error {
	logger.Infow("starting build",
		"outputDir", cfg.OutputDir,
		"baseURL", cfg.BaseURL,
		"siteTitle", cfg.SiteTitle,
	)

	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		return fmt.Errorf("content directory '%s' not found. Please create it and add your content files", cfg.ContentDir)
	}
	if _, err := os.Stat(cfg.LayoutsDir); os.IsNotExist(err) {
		return fmt.Errorf("layouts directory '%s' not found. Please create it and add your .html layout files", cfg.LayoutsDir)
	}

	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); !os.IsNotExist(err) {
		if err := copyDirContents(cfg.StaticDir, cfg.OutputDir); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
		logger.Infof("static assets copied from '%s'", cfg.StaticDir)
	} else {
		logger.Infof("static assets directory '%s' not found, skipping copy", cfg.StaticDir)
	}

	engine, err := render.LoadLayouts(cfg.LayoutsDir)
	if err != nil {
		return fmt.Errorf("loading layouts: %w", err)
	}

	store := content.NewStore(os.DirFS(cfg.ContentDir))
	site, err := query.Load(store, loader.New())
	if err != nil {
		return err
	}
	for _, perr := range site.Errors() {
		logger.Warnw("document failed validation, skipping",
			"path", perr.Path,
			"kind", perr.Kind.String(),
			"error", perr.Error(),
		)
	}
	logger.Infow("content loaded",
		"posts", len(site.Posts()),
		"projects", len(site.Projects()),
		"invalid", len(site.Errors()),
	)

	// Each page builds independently. A failed page never stops its
	// siblings; the errors are collected and reported together at the end.
	var pageErrs []error

	if err := buildHomePage(cfg, engine, site); err != nil {
		pageErrs = append(pageErrs, err)
	}
	if err := buildBlogPages(cfg, engine, site); err != nil {
		pageErrs = append(pageErrs, err)
	}
	if err := buildProjectsPage(cfg, engine, site); err != nil {
		pageErrs = append(pageErrs, err)
	}

	if len(pageErrs) > 0 {
		return fmt.Errorf("build finished with failed pages: %w", errors.Join(pageErrs...))
	}
	logger.Info("build completed successfully")
	return nil
}

func homePageSpec() page.PageSpec {
	return page.PageSpec{
		Name:   "home",
		Layout: "home.html",
		Sections: []page.Section{
			{Name: "hero", Required: true},
			{Name: "about", Required: true},
			{Name: "experience"},
			{Name: "testimonials"},
			{Name: "faq"},
			{Name: "posts"},
		},
	}
}

func buildHomePage(cfg config.Config, engine *render.Engine, site *query.Site) error {
	data := map[string]interface{}{}
	if idx := site.Index(); idx != nil {
		data["hero"] = idx.Hero
		data["about"] = aboutView{
			Title:      idx.About.Title,
			Paragraphs: page.Paragraphs(idx.About.Description),
		}
		if len(idx.Experience.Items) > 0 {
			data["experience"] = idx.Experience
		}
		if len(idx.Testimonials.Items) > 0 {
			data["testimonials"] = idx.Testimonials
		}
		if len(idx.FAQ.Items) > 0 {
			data["faq"] = idx.FAQ
		}
	}
	if recent := site.RecentPosts(recentPostsOnHome); len(recent) > 0 {
		data["posts"] = recent
	}

	spec := homePageSpec()
	spec.Title = cfg.SiteTitle
	pm, cerr := page.Compose(spec, data)
	if cerr != nil {
		return cerr
	}
	return writePage(cfg, engine, pm, filepath.Join(cfg.OutputDir, "index.html"))
}

func buildBlogPages(cfg config.Config, engine *render.Engine, site *query.Site) error {
	var pageErrs []error

	listSpec := page.PageSpec{
		Name:     "blog",
		Layout:   "list-posts.html",
		Title:    "Blog",
		Sections: []page.Section{{Name: "posts"}},
	}
	listData := map[string]interface{}{}
	if posts := site.Posts(); len(posts) > 0 {
		listData["posts"] = posts
	}
	if pm, cerr := page.Compose(listSpec, listData); cerr != nil {
		pageErrs = append(pageErrs, cerr)
	} else if !engine.Has(pm.Layout) {
		logger.Warnf("layout '%s' not found, skipping blog list page", pm.Layout)
	} else if err := writePage(cfg, engine, pm, filepath.Join(cfg.OutputDir, "blog", "index.html")); err != nil {
		pageErrs = append(pageErrs, err)
	}

	for _, post := range site.Posts() {
		spec := page.PageSpec{
			Name:     "blog/" + post.Slug,
			Layout:   postLayout(engine),
			Title:    post.Title,
			Sections: []page.Section{{Name: "post", Required: true}},
		}
		pm, cerr := page.Compose(spec, map[string]interface{}{"post": post})
		if cerr != nil {
			pageErrs = append(pageErrs, cerr)
			continue
		}
		out := filepath.Join(cfg.OutputDir, "blog", post.Slug, "index.html")
		if err := writePage(cfg, engine, pm, out); err != nil {
			pageErrs = append(pageErrs, err)
		}
	}
	return errors.Join(pageErrs...)
}

// postLayout picks the layout for a single post: single-post.html when the
// layout set defines it, otherwise single.html, otherwise the base layout.
func postLayout(engine *render.Engine) string {
	for _, name := range []string{"single-post.html", "single.html"} {
		if engine.Has(name) {
			return name
		}
	}
	logger.Warnf("no single post layout found, falling back to '%s'", render.BaseLayout)
	return render.BaseLayout
}

func buildProjectsPage(cfg config.Config, engine *render.Engine, site *query.Site) error {
	spec := page.PageSpec{
		Name:     "projects",
		Layout:   "list-projects.html",
		Title:    "Projects",
		Sections: []page.Section{{Name: "projects"}, {Name: "featured"}},
	}
	data := map[string]interface{}{}
	if projects := site.Projects(); len(projects) > 0 {
		data["projects"] = projects
	}
	if featured := site.FeaturedProjects(); len(featured) > 0 {
		data["featured"] = featured
	}
	pm, cerr := page.Compose(spec, data)
	if cerr != nil {
		return cerr
	}
	if !engine.Has(pm.Layout) {
		logger.Warnf("layout '%s' not found, skipping projects page", pm.Layout)
		return nil
	}
	return writePage(cfg, engine, pm, filepath.Join(cfg.OutputDir, "projects", "index.html"))
}

func writePage(cfg config.Config, engine *render.Engine, pm *page.PageModel, outputPath string) error {
	ctx := pageContext{
		Site: siteInfo{Title: cfg.SiteTitle, BaseURL: cfg.BaseURL},
		Page: pm,
	}
	if err := engine.ExecuteToFile(outputPath, pm.Layout, ctx); err != nil {
		return fmt.Errorf("page %q: %w", pm.Name, err)
	}
	logger.Infow("generated page", "page", pm.Name, "layout", pm.Layout, "output", outputPath)
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
		} else {
			if err := copyFile(path, dstPath); err != nil {
				return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
			}
		}
		return nil
	})
}

// copyFile copies a single file from srcFile to dstFile.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstDir := filepath.Dir(dstFile)
	if err := os.MkdirAll(dstDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", dstDir, err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}

	if srcInfo, err := os.Stat(srcFile); err == nil {
		if err := os.Chmod(dstFile, srcInfo.Mode()); err != nil {
			logger.Warnf("could not set permissions on %s: %v", dstFile, err)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
