// Package theme holds the site configuration file: the theme settings the
// static site reads and the scaffolding settings postkit reads.
package theme

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// SupportedLocales lists the locale codes the theme ships translations for
var SupportedLocales = []string{"de", "en", "es", "fr", "ja", "ko", "pl", "pt", "ru", "zh", "zh-tw"}

// Config is the root of postkit.toml
type Config struct {
	Site     Site     `mapstructure:"site" toml:"site" json:"site"`
	Color    Color    `mapstructure:"color" toml:"color" json:"color"`
	Global   Global   `mapstructure:"global" toml:"global" json:"global"`
	Comment  Comment  `mapstructure:"comment" toml:"comment" json:"comment"`
	SEO      SEO      `mapstructure:"seo" toml:"seo" json:"seo"`
	Footer   Footer   `mapstructure:"footer" toml:"footer" json:"footer"`
	Preload  Preload  `mapstructure:"preload" toml:"preload" json:"preload"`
	Scaffold Scaffold `mapstructure:"scaffold" toml:"scaffold" json:"scaffold"`
}

type Site struct {
	Title       string `mapstructure:"title" toml:"title" json:"title"`
	Subtitle    string `mapstructure:"subtitle" toml:"subtitle" json:"subtitle"`
	Description string `mapstructure:"description" toml:"description" json:"description"`
	I18nTitle   bool   `mapstructure:"i18n_title" toml:"i18n_title" json:"i18n_title"`
	Author      string `mapstructure:"author" toml:"author" json:"author"`
	URL         string `mapstructure:"url" toml:"url" json:"url"`
	Base        string `mapstructure:"base" toml:"base" json:"base"`
	Favicon     string `mapstructure:"favicon" toml:"favicon" json:"favicon"`
}

// Palette is one set of color tokens, values are CSS color strings
type Palette struct {
	Primary    string `mapstructure:"primary" toml:"primary" json:"primary"`
	Secondary  string `mapstructure:"secondary" toml:"secondary" json:"secondary"`
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Highlight  string `mapstructure:"highlight" toml:"highlight" json:"highlight"`
}

type Color struct {
	Mode  string  `mapstructure:"mode" toml:"mode" json:"mode"` // light, dark, auto
	Light Palette `mapstructure:"light" toml:"light" json:"light"`
	Dark  Palette `mapstructure:"dark" toml:"dark" json:"dark"`
}

type Global struct {
	Locale       string   `mapstructure:"locale" toml:"locale" json:"locale"`
	MoreLocales  []string `mapstructure:"more_locales" toml:"more_locales" json:"more_locales"`
	FontStyle    string   `mapstructure:"font_style" toml:"font_style" json:"font_style"`
	DateFormat   string   `mapstructure:"date_format" toml:"date_format" json:"date_format"`
	TOC          bool     `mapstructure:"toc" toml:"toc" json:"toc"`
	KaTeX        bool     `mapstructure:"katex" toml:"katex" json:"katex"`
	ReduceMotion bool     `mapstructure:"reduce_motion" toml:"reduce_motion" json:"reduce_motion"`
}

type Giscus struct {
	Repo             string `mapstructure:"repo" toml:"repo" json:"repo"`
	RepoID           string `mapstructure:"repo_id" toml:"repo_id" json:"repo_id"`
	Category         string `mapstructure:"category" toml:"category" json:"category"`
	CategoryID       string `mapstructure:"category_id" toml:"category_id" json:"category_id"`
	Mapping          string `mapstructure:"mapping" toml:"mapping" json:"mapping"`
	Strict           string `mapstructure:"strict" toml:"strict" json:"strict"`
	ReactionsEnabled string `mapstructure:"reactions_enabled" toml:"reactions_enabled" json:"reactions_enabled"`
	EmitMetadata     string `mapstructure:"emit_metadata" toml:"emit_metadata" json:"emit_metadata"`
	InputPosition    string `mapstructure:"input_position" toml:"input_position" json:"input_position"`
}

type Twikoo struct {
	EnvID string `mapstructure:"env_id" toml:"env_id" json:"env_id"`
}

type Waline struct {
	ServerURL     string   `mapstructure:"server_url" toml:"server_url" json:"server_url"`
	Emoji         []string `mapstructure:"emoji" toml:"emoji" json:"emoji"`
	Search        bool     `mapstructure:"search" toml:"search" json:"search"`
	ImageUploader bool     `mapstructure:"image_uploader" toml:"image_uploader" json:"image_uploader"`
}

type Comment struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Giscus  Giscus `mapstructure:"giscus" toml:"giscus" json:"giscus"`
	Twikoo  Twikoo `mapstructure:"twikoo" toml:"twikoo" json:"twikoo"`
	Waline  Waline `mapstructure:"waline" toml:"waline" json:"waline"`
}

type Verification struct {
	Google string `mapstructure:"google" toml:"google" json:"google"`
	Bing   string `mapstructure:"bing" toml:"bing" json:"bing"`
	Yandex string `mapstructure:"yandex" toml:"yandex" json:"yandex"`
	Baidu  string `mapstructure:"baidu" toml:"baidu" json:"baidu"`
}

type Follow struct {
	FeedID string `mapstructure:"feed_id" toml:"feed_id" json:"feed_id"`
	UserID string `mapstructure:"user_id" toml:"user_id" json:"user_id"`
}

type SEO struct {
	TwitterID         string       `mapstructure:"twitter_id" toml:"twitter_id" json:"twitter_id"`
	Verification      Verification `mapstructure:"verification" toml:"verification" json:"verification"`
	GoogleAnalyticsID string       `mapstructure:"google_analytics_id" toml:"google_analytics_id" json:"google_analytics_id"`
	UmamiAnalyticsID  string       `mapstructure:"umami_analytics_id" toml:"umami_analytics_id" json:"umami_analytics_id"`
	Follow            Follow       `mapstructure:"follow" toml:"follow" json:"follow"`
	APIFlashKey       string       `mapstructure:"apiflash_key" toml:"apiflash_key" json:"apiflash_key"`
}

type Link struct {
	Name string `mapstructure:"name" toml:"name" json:"name"`
	URL  string `mapstructure:"url" toml:"url" json:"url"`
}

type Footer struct {
	Links     []Link `mapstructure:"links" toml:"links" json:"links"`
	StartYear int    `mapstructure:"start_year" toml:"start_year" json:"start_year"`
}

type Preload struct {
	ImageHostURL            string `mapstructure:"image_host_url" toml:"image_host_url" json:"image_host_url"`
	CustomGoogleAnalyticsJS string `mapstructure:"custom_google_analytics_js" toml:"custom_google_analytics_js" json:"custom_google_analytics_js"`
	CustomUmamiAnalyticsJS  string `mapstructure:"custom_umami_analytics_js" toml:"custom_umami_analytics_js" json:"custom_umami_analytics_js"`
}

// Scaffold configures `postkit new`
type Scaffold struct {
	ContentDir  string           `mapstructure:"content_dir" toml:"content_dir" json:"content_dir"`
	DefaultTags []string         `mapstructure:"default_tags" toml:"default_tags" json:"default_tags"`
	Rules       []models.TagRule `mapstructure:"rules" toml:"rules" json:"rules"`
}

// Default returns the configuration the blog ships with
func Default() *Config {
	return &Config{
		Site: Site{
			Title:       "Ramiro N. Cosa",
			Subtitle:    "Full Stack Developer & Tech Writer",
			Description: "Full Stack Developer specializing in modern web technologies. Sharing insights on JavaScript, React, Node.js, and web development best practices.",
			Author:      "Ramiro N. Cosa",
			URL:         "https://ramirocosa.is-a.dev",
			Base:        "/",
			Favicon:     "/icons/favicon.svg",
		},
		Color: Color{
			Mode: "light",
			Light: Palette{
				Primary:    "oklch(25% 0.015 240)",
				Secondary:  "oklch(45% 0.01 240)",
				Background: "oklch(98% 0.005 240)",
				Highlight:  "oklch(70% 0.12 240 / 0.15)",
			},
			Dark: Palette{
				Primary:    "oklch(90% 0.01 240)",
				Secondary:  "oklch(70% 0.01 240)",
				Background: "oklch(15% 0.01 240)",
				Highlight:  "oklch(50% 0.12 240 / 0.2)",
			},
		},
		Global: Global{
			Locale:      "es",
			MoreLocales: []string{"en"},
			FontStyle:   "sans",
			DateFormat:  "YYYY-MM-DD",
			TOC:         true,
			KaTeX:       true,
		},
		Comment: Comment{
			Giscus: Giscus{
				Mapping:          "pathname",
				Strict:           "0",
				ReactionsEnabled: "1",
				EmitMetadata:     "0",
				InputPosition:    "bottom",
			},
			Waline: Waline{
				ServerURL: "https://retypeset-comment.radishzz.cc",
				Emoji:     []string{"https://unpkg.com/@waline/emojis@1.2.0/tw-emoji"},
			},
		},
		SEO: SEO{
			TwitterID:         "@ramiro_cosa",
			GoogleAnalyticsID: "G-XXXXXXXXXX",
		},
		Footer: Footer{
			Links: []Link{
				{Name: "LinkedIn", URL: "https://linkedin.com/in/ramicosa"},
				{Name: "GitHub", URL: "https://github.com/radikeCosa"},
				{Name: "Email", URL: "mailto:ramirocosa@gmail.com"},
				{Name: "Portfolio", URL: "https://ramirocosa.is-a.dev"},
			},
			StartYear: 2025,
		},
		Scaffold: Scaffold{
			ContentDir:  "src/content/posts",
			DefaultTags: []string{"algoritmos"},
			Rules: []models.TagRule{
				{Keyword: "leetcode", Tag: "leetcode"},
				{Keyword: "freecodecamp", Tag: "freecodecamp"},
				{Keyword: "daily", Tag: "daily"},
			},
		},
	}
}

// SetDefaults registers the values read through viper getters
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("site.title", d.Site.Title)
	v.SetDefault("site.author", d.Site.Author)
	v.SetDefault("site.url", d.Site.URL)
	v.SetDefault("site.base", d.Site.Base)
	v.SetDefault("global.locale", d.Global.Locale)
	v.SetDefault("global.more_locales", d.Global.MoreLocales)
	v.SetDefault("global.toc", d.Global.TOC)
	v.SetDefault("scaffold.content_dir", d.Scaffold.ContentDir)
	v.SetDefault("scaffold.default_tags", d.Scaffold.DefaultTags)
	v.SetDefault("scaffold.rules", d.Scaffold.Rules)
	v.SetDefault("log.level", "warn")
}

// Load decodes the full configuration from v on top of Default
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings other code relies on
func (c *Config) Validate() error {
	if !IsSupportedLocale(c.Global.Locale) {
		return fmt.Errorf("unsupported locale %q (supported: %s)", c.Global.Locale, strings.Join(SupportedLocales, ", "))
	}
	for _, l := range c.Global.MoreLocales {
		if !IsSupportedLocale(l) {
			return fmt.Errorf("unsupported locale %q in more_locales", l)
		}
		if l == c.Global.Locale {
			return fmt.Errorf("locale %q is listed in both locale and more_locales", l)
		}
	}
	if !strings.HasPrefix(c.Site.Base, "/") {
		return fmt.Errorf("site base must start with '/': %q", c.Site.Base)
	}
	u, err := url.Parse(c.Site.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site url must be absolute: %q", c.Site.URL)
	}
	if c.Scaffold.ContentDir == "" {
		return fmt.Errorf("scaffold content_dir is required")
	}
	for _, r := range c.Scaffold.Rules {
		if r.Keyword == "" || r.Tag == "" {
			return fmt.Errorf("tag rule needs both keyword and tag: %+v", r)
		}
	}
	return nil
}

// AllLocales returns the default locale followed by the extra ones
func (c *Config) AllLocales() []string {
	return append([]string{c.Global.Locale}, c.Global.MoreLocales...)
}

// BasePath returns the site base without trailing slash, "" for the root
func (c *Config) BasePath() string {
	return NormalizeBase(c.Site.Base)
}

// NormalizeBase maps "/" to "" and strips one trailing slash otherwise
func NormalizeBase(base string) string {
	if base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, "/")
}

// IsSupportedLocale reports whether the theme has translations for locale
func IsSupportedLocale(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// Write encodes cfg as TOML to path, refusing to overwrite. A file that
// could not be written completely is removed.
func Write(fsys afero.Fs, path string, cfg *Config) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		fsys.Remove(path)
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		fsys.Remove(path)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
