package config

import (
	"fmt"

	"github.com/radikecosa/postkit/internal/models"
	"github.com/radikecosa/postkit/internal/scaffold"
	"github.com/radikecosa/postkit/internal/theme"
	"github.com/spf13/viper"
)

// GetLocale returns the default site locale
func GetLocale() string {
	return viper.GetString("global.locale")
}

// GetContentDir returns the directory posts are written to
func GetContentDir() string {
	return viper.GetString("scaffold.content_dir")
}

// GetDefaultTags returns the tags every new post starts with
func GetDefaultTags() []string {
	return viper.GetStringSlice("scaffold.default_tags")
}

// GetTagRules returns the keyword rules used to tag new posts
func GetTagRules() ([]models.TagRule, error) {
	var rules []models.TagRule
	if err := viper.UnmarshalKey("scaffold.rules", &rules); err != nil {
		return nil, fmt.Errorf("failed to decode scaffold.rules: %w", err)
	}
	return rules, nil
}

// GetLogLevel returns the configured log level
func GetLogLevel() string {
	return viper.GetString("log.level")
}

// Theme decodes and validates the whole configuration
func Theme() (*theme.Config, error) {
	return theme.Load(viper.GetViper())
}

// ScaffoldOptions builds the options for scaffold.Scaffold from the loaded
// configuration. The configuration is validated first. The bilingual pair
// is the default locale plus the first extra locale.
func ScaffoldOptions() (scaffold.Options, error) {
	cfg, err := Theme()
	if err != nil {
		return scaffold.Options{}, fmt.Errorf("invalid config: %w", err)
	}

	locales := cfg.AllLocales()
	opts := scaffold.Options{
		ContentDir:    cfg.Scaffold.ContentDir,
		Locale:        locales[0],
		TOC:           cfg.Global.TOC,
		PrimaryLocale: locales[0],
		DefaultTags:   cfg.Scaffold.DefaultTags,
		Rules:         cfg.Scaffold.Rules,
	}
	if len(locales) > 1 {
		opts.SecondaryLocale = locales[1]
	}

	return opts, nil
}
