package models

// TagRule adds Tag to a new post when its base name contains Keyword
// (case-insensitive)
type TagRule struct {
	Keyword string `mapstructure:"keyword" toml:"keyword" json:"keyword"`
	Tag     string `mapstructure:"tag" toml:"tag" json:"tag"`
}
