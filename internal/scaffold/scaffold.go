// Package scaffold creates new post files with generated front-matter.
//
// A run derives a base name and slug from one title or path, plans one
// target file (single mode) or a primary/secondary locale pair (bilingual
// mode), checks that none of the targets exist, then writes them. The
// existence checks all happen before the first write, so a collision never
// leaves a half-created pair behind. A write failure after that point does
// not remove files already written in the same run.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/radikecosa/postkit/internal/frontmatter"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/spf13/afero"
)

// DefaultInput is used when no title or path is given
const DefaultInput = "new-post"

var (
	ErrAlreadyExists = errors.New("file already exists")
	ErrWriteFailed   = errors.New("write failed")
	ErrInvalidInput  = errors.New("invalid input")
)

var (
	// DefaultTags start every tag list
	DefaultTags = []string{"algoritmos"}

	// DefaultRules are checked in order against the lowercased base name
	DefaultRules = []models.TagRule{
		{Keyword: "leetcode", Tag: "leetcode"},
		{Keyword: "freecodecamp", Tag: "freecodecamp"},
		{Keyword: "daily", Tag: "daily"},
	}
)

var (
	postExt = regexp.MustCompile(`\.(md|mdx)$`)
	// locale tags such as "en" or "zh-tw"; they end up in file names
	localeTag = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]+)*$`)
)

// PathError records the file an operation failed on
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Options is everything a run needs from the site configuration
type Options struct {
	// ContentDir is the root all targets are created under
	ContentDir string
	// Locale is written to the lang field in single mode
	Locale string
	TOC    bool
	// PrimaryLocale and SecondaryLocale name the bilingual pair. The
	// secondary file gets a ".<locale>.md" suffix.
	PrimaryLocale   string
	SecondaryLocale string
	// DefaultTags falls back to the package default when nil
	DefaultTags []string
	// Rules falls back to the package default when nil
	Rules []models.TagRule
	// Now is the clock, time.Now when nil
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ContentDir == "" {
		o.ContentDir = "src/content/posts"
	}
	if o.PrimaryLocale == "" {
		o.PrimaryLocale = "es"
	}
	if o.SecondaryLocale == "" {
		o.SecondaryLocale = "en"
	}
	if o.Locale == "" {
		o.Locale = o.PrimaryLocale
	}
	if o.DefaultTags == nil {
		o.DefaultTags = DefaultTags
	}
	if o.Rules == nil {
		o.Rules = DefaultRules
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Target is one file a run will create
type Target struct {
	Path   string `json:"path"`
	Locale string `json:"locale"`
}

// Result describes a run. Written lists only the files that were actually
// created, so it is meaningful on a partial failure too.
type Result struct {
	Request   models.ScaffoldRequest `json:"request"`
	Mode      models.Mode            `json:"mode"`
	Published time.Time              `json:"published"`
	Tags      []string               `json:"tags"`
	Targets   []Target               `json:"targets"`
	Written   []Target               `json:"written"`
}

// BaseName strips any directory and a trailing .md/.mdx from raw
func BaseName(raw string) string {
	return postExt.ReplaceAllString(filepath.Base(raw), "")
}

// Slug lowercases s, turns each whitespace run into one hyphen and drops
// everything outside [a-z0-9-]
func Slug(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(s) {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isSpace treats the byte order mark as whitespace and NEL as not, the
// same set front-end tooling uses for slugs
func isSpace(r rune) bool {
	if r == '\ufeff' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// DetectTags returns defaults followed by the tag of every rule whose
// keyword occurs in baseName, ignoring case. Duplicates are dropped, the
// first occurrence wins.
func DetectTags(baseName string, defaults []string, rules []models.TagRule) []string {
	lower := strings.ToLower(baseName)

	candidates := append([]string{}, defaults...)
	for _, rule := range rules {
		if strings.Contains(lower, strings.ToLower(rule.Keyword)) {
			candidates = append(candidates, rule.Tag)
		}
	}

	seen := make(map[string]bool, len(candidates))
	tags := make([]string, 0, len(candidates))
	for _, tag := range candidates {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}

// NewRequest derives the base name and slug for raw. An empty raw uses
// DefaultInput.
func NewRequest(raw string) (models.ScaffoldRequest, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultInput
	}

	req := models.ScaffoldRequest{
		RawInput: raw,
		BaseName: BaseName(raw),
	}
	req.Slug = Slug(req.BaseName)

	if req.Slug == "" || strings.Trim(req.Slug, "-") == "" {
		return req, fmt.Errorf("%w: %q does not produce a usable slug", ErrInvalidInput, raw)
	}
	return req, nil
}

// Plan computes the files a run would create, without touching the
// filesystem
func Plan(req models.ScaffoldRequest, mode models.Mode, opts Options) ([]Target, error) {
	opts = opts.withDefaults()

	switch mode {
	case models.ModeSingle:
		dir, err := relativeDir(req.RawInput)
		if err != nil {
			return nil, err
		}
		ext := filepath.Ext(req.RawInput)
		if ext != ".md" && ext != ".mdx" {
			ext = ".md"
		}
		return []Target{{
			Path:   filepath.Join(opts.ContentDir, dir, req.BaseName+ext),
			Locale: opts.Locale,
		}}, nil

	case models.ModeBilingual:
		for _, l := range []string{opts.PrimaryLocale, opts.SecondaryLocale} {
			if !localeTag.MatchString(l) {
				return nil, fmt.Errorf("%w: %q is not a locale tag", ErrInvalidInput, l)
			}
		}
		if opts.PrimaryLocale == opts.SecondaryLocale {
			return nil, fmt.Errorf("%w: bilingual mode needs two different locales, got %q twice", ErrInvalidInput, opts.PrimaryLocale)
		}
		return []Target{
			{Path: filepath.Join(opts.ContentDir, req.Slug+".md"), Locale: opts.PrimaryLocale},
			{Path: filepath.Join(opts.ContentDir, req.Slug+"."+opts.SecondaryLocale+".md"), Locale: opts.SecondaryLocale},
		}, nil

	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}
}

// relativeDir returns the directory part of raw, which must stay inside
// the content root
func relativeDir(raw string) (string, error) {
	if filepath.IsAbs(raw) {
		return "", fmt.Errorf("%w: absolute path %q, give a path relative to the content directory", ErrInvalidInput, raw)
	}
	dir := filepath.Dir(filepath.Clean(raw))
	if dir == ".." || strings.HasPrefix(dir, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path %q leaves the content directory", ErrInvalidInput, raw)
	}
	return dir, nil
}

// Scaffold creates the post file(s) for raw on fsys
func Scaffold(fsys afero.Fs, raw string, mode models.Mode, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	req, err := NewRequest(raw)
	if err != nil {
		return nil, err
	}

	targets, err := Plan(req, mode, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Request: req,
		Mode:    mode,
		Targets: targets,
	}

	// Every target is checked before anything is created
	for _, t := range targets {
		exists, err := afero.Exists(fsys, t.Path)
		if err != nil {
			return result, &PathError{Op: "stat", Path: t.Path, Err: fmt.Errorf("%w: %w", ErrWriteFailed, err)}
		}
		if exists {
			return result, &PathError{Op: "create", Path: t.Path, Err: ErrAlreadyExists}
		}
	}

	for _, dir := range targetDirs(targets) {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return result, &PathError{Op: "mkdir", Path: dir, Err: fmt.Errorf("%w: %w", ErrWriteFailed, err)}
		}
	}

	result.Tags = DetectTags(req.BaseName, opts.DefaultTags, opts.Rules)
	result.Published = opts.Now().UTC().Truncate(time.Millisecond)

	for _, t := range targets {
		doc := models.PostDocument{
			Title:     req.BaseName,
			Published: result.Published,
			Tags:      result.Tags,
			TOC:       opts.TOC,
			Lang:      t.Locale,
			Abbrlink:  req.Slug,
		}

		content, err := frontmatter.Render(doc)
		if err != nil {
			return result, &PathError{Op: "render", Path: t.Path, Err: err}
		}

		if err := writeNew(fsys, t.Path, content); err != nil {
			return result, &PathError{Op: "write", Path: t.Path, Err: fmt.Errorf("%w: %w", ErrWriteFailed, err)}
		}
		result.Written = append(result.Written, t)
	}

	return result, nil
}

func targetDirs(targets []Target) []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, t := range targets {
		dir := filepath.Dir(t.Path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// writeNew creates path exclusively so a file that appeared after the
// existence checks is not overwritten
func writeNew(fsys afero.Fs, path string, content []byte) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
