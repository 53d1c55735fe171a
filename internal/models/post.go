package models

import "time"

// Mode selects how many locale variants a scaffold run produces
type Mode string

const (
	ModeSingle    Mode = "single"
	ModeBilingual Mode = "bilingual"
)

// ScaffoldRequest is the input of a single scaffold run, derived from the
// raw title or path given on the command line
type ScaffoldRequest struct {
	RawInput string `json:"raw_input"`
	BaseName string `json:"base_name"`
	Slug     string `json:"slug"`
}

// PostDocument represents the front-matter block of a post file.
// Field order matches the order keys are written in.
type PostDocument struct {
	Title       string    `yaml:"title" json:"title"`
	Published   time.Time `yaml:"published" json:"published"`
	Description string    `yaml:"description" json:"description"`
	Updated     string    `yaml:"updated" json:"updated"`
	Tags        []string  `yaml:"tags" json:"tags"`
	Draft       bool      `yaml:"draft" json:"draft"`
	Pin         int       `yaml:"pin" json:"pin"`
	TOC         bool      `yaml:"toc" json:"toc"`
	Lang        string    `yaml:"lang" json:"lang"`
	Abbrlink    string    `yaml:"abbrlink" json:"abbrlink"`
}

// HasTag reports whether the document carries tag
func (d *PostDocument) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
