package config

import (
	"testing"

	"github.com/radikecosa/postkit/internal/theme"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	theme.SetDefaults(viper.GetViper())
	t.Cleanup(viper.Reset)
}

func TestScaffoldOptionsDefaults(t *testing.T) {
	resetViper(t)

	opts, err := ScaffoldOptions()
	if err != nil {
		t.Fatalf("ScaffoldOptions failed: %v", err)
	}

	if opts.ContentDir != "src/content/posts" {
		t.Errorf("expected content dir 'src/content/posts', got %q", opts.ContentDir)
	}
	if opts.Locale != "es" || opts.PrimaryLocale != "es" {
		t.Errorf("expected es locale, got %q/%q", opts.Locale, opts.PrimaryLocale)
	}
	if opts.SecondaryLocale != "en" {
		t.Errorf("expected secondary locale 'en', got %q", opts.SecondaryLocale)
	}
	if !opts.TOC {
		t.Error("expected toc enabled")
	}
	if len(opts.DefaultTags) != 1 || opts.DefaultTags[0] != "algoritmos" {
		t.Errorf("expected [algoritmos], got %v", opts.DefaultTags)
	}
	if len(opts.Rules) != 3 || opts.Rules[2].Tag != "daily" {
		t.Errorf("unexpected rules: %+v", opts.Rules)
	}
}

func TestScaffoldOptionsOverrides(t *testing.T) {
	resetViper(t)

	viper.Set("global.toc", false)
	viper.Set("global.locale", "en")
	viper.Set("global.more_locales", []string{})
	viper.Set("scaffold.rules", []map[string]interface{}{
		{"keyword": "go", "tag": "golang"},
	})

	opts, err := ScaffoldOptions()
	if err != nil {
		t.Fatalf("ScaffoldOptions failed: %v", err)
	}

	if opts.TOC {
		t.Error("expected toc disabled")
	}
	if opts.Locale != "en" {
		t.Errorf("expected locale 'en', got %q", opts.Locale)
	}
	if opts.SecondaryLocale != "" {
		t.Errorf("expected no secondary locale, got %q", opts.SecondaryLocale)
	}
	if len(opts.Rules) != 1 || opts.Rules[0].Keyword != "go" || opts.Rules[0].Tag != "golang" {
		t.Errorf("unexpected rules: %+v", opts.Rules)
	}
}

func TestScaffoldOptionsRejectsUnknownLocale(t *testing.T) {
	resetViper(t)
	viper.Set("global.locale", "tlh")

	if _, err := ScaffoldOptions(); err == nil {
		t.Error("expected error for unsupported locale")
	}
}

func TestScaffoldOptionsRejectsBadSecondaryLocale(t *testing.T) {
	tests := []struct {
		name string
		more []string
	}{
		{name: "path-like", more: []string{"x/../../../../escaped"}},
		{name: "unsupported", more: []string{"tlh"}},
		{name: "same as primary", more: []string{"es"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.Set("global.more_locales", tt.more)

			if _, err := ScaffoldOptions(); err == nil {
				t.Errorf("expected error for more_locales %v", tt.more)
			}
		})
	}
}

func TestThemeBasePath(t *testing.T) {
	resetViper(t)

	cfg, err := Theme()
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if got := cfg.BasePath(); got != "" {
		t.Errorf("expected empty base for '/', got %q", got)
	}

	viper.Set("site.base", "/blog/")
	cfg, err = Theme()
	if err != nil {
		t.Fatalf("Theme failed: %v", err)
	}
	if got := cfg.BasePath(); got != "/blog" {
		t.Errorf("expected '/blog', got %q", got)
	}
}
