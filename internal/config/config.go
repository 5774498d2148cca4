package config

// Config is the site configuration, decoded from config.yaml (or PORTFOLIO_*
// environment variables) by viper.
type Config struct {
	SiteTitle  string `mapstructure:"siteTitle"`
	BaseURL    string `mapstructure:"baseURL"`
	OutputDir  string `mapstructure:"outputDir"`
	ContentDir string `mapstructure:"contentDir"`
	LayoutsDir string `mapstructure:"layoutsDir"`
	StaticDir  string `mapstructure:"staticDir"`
}
