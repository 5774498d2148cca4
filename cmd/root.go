package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/adhillon192/Vue-Portfolio/internal/config"
)

var cfgFile string
var appConfig config.Config
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Static site generator for the portfolio site",
	Long: `portfolio builds a personal portfolio website from structured content:
a YAML homepage document, YAML project entries, and Markdown blog posts with
front matter. Content is validated against per-collection schemas, composed
into page models, and rendered through the layouts in './layouts/'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeLogger(); err != nil {
			return err
		}
		return initializeConfig(cmd)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeLogger() error {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = zl.Sugar()
	return nil
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("siteTitle", "Aman Dhillon")
	v.SetDefault("baseURL", "")
	v.SetDefault("outputDir", "public")
	v.SetDefault("contentDir", "content")
	v.SetDefault("layoutsDir", "layouts")
	v.SetDefault("staticDir", "static")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("config file %s not found in current directory: %w", cfgFile, err)
			}
			logger.Info("no config file found, using defaults and environment variables")
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Infof("using config file: %s", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	return nil
}
