// Package content reads the posts already present in the content directory.
package content

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/radikecosa/postkit/internal/frontmatter"
	"github.com/radikecosa/postkit/internal/logger"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/radikecosa/postkit/internal/scaffold"
	"github.com/radikecosa/postkit/internal/theme"
	"github.com/spf13/afero"
)

// Post is one locale variant of a post on disk
type Post struct {
	Path   string              `json:"path"`
	Slug   string              `json:"slug"`
	Locale string              `json:"locale"`
	Doc    models.PostDocument `json:"front_matter"`
	Body   string              `json:"-"`
}

// Filter narrows a post listing; zero values match everything
type Filter struct {
	Tag    string
	Locale string
	// Drafts includes draft posts, which are hidden otherwise
	Drafts bool
}

// Load walks dir and parses every .md/.mdx file. Files without valid
// front-matter are skipped with a warning. A missing dir yields no posts.
func Load(fsys afero.Fs, dir, defaultLocale string) ([]Post, error) {
	if ok, err := afero.DirExists(fsys, dir); err != nil || !ok {
		return nil, err
	}

	var posts []Post
	err := afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".mdx" {
			return nil
		}

		data, err := afero.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		doc, body, err := frontmatter.Parse(data)
		if err != nil {
			logger.Warn("skipping post", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			return nil
		}

		p := newPost(path, doc, defaultLocale)
		p.Body = string(body)
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	Sort(posts)
	return posts, nil
}

func newPost(path string, doc models.PostDocument, defaultLocale string) Post {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fileLocale := ""
	if i := strings.LastIndex(stem, "."); i > 0 && theme.IsSupportedLocale(stem[i+1:]) {
		fileLocale = stem[i+1:]
		stem = stem[:i]
	}

	p := Post{Path: path, Slug: doc.Abbrlink, Locale: doc.Lang, Doc: doc}
	if p.Slug == "" {
		p.Slug = scaffold.Slug(stem)
	}
	if p.Locale == "" {
		p.Locale = fileLocale
	}
	if p.Locale == "" {
		p.Locale = defaultLocale
	}
	return p
}

// Sort orders posts pinned first, then newest first, then by path
func Sort(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i].Doc, posts[j].Doc
		if a.Pin != b.Pin {
			return a.Pin > b.Pin
		}
		if !a.Published.Equal(b.Published) {
			return a.Published.After(b.Published)
		}
		return posts[i].Path < posts[j].Path
	})
}

// Apply returns the posts matching f
func (f Filter) Apply(posts []Post) []Post {
	var out []Post
	for _, p := range posts {
		if p.Doc.Draft && !f.Drafts {
			continue
		}
		if f.Locale != "" && p.Locale != f.Locale {
			continue
		}
		if f.Tag != "" && !p.Doc.HasTag(f.Tag) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Group is every locale variant sharing one slug
type Group struct {
	Slug     string `json:"slug"`
	Variants []Post `json:"variants"`
}

// GroupBySlug groups posts by slug, keeping the order slugs first appear in
func GroupBySlug(posts []Post) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, p := range posts {
		i, ok := index[p.Slug]
		if !ok {
			i = len(groups)
			index[p.Slug] = i
			groups = append(groups, Group{Slug: p.Slug})
		}
		groups[i].Variants = append(groups[i].Variants, p)
	}
	return groups
}

// Find returns the variants of slug, or nil
func Find(posts []Post, slug string) []Post {
	for _, g := range GroupBySlug(posts) {
		if g.Slug == slug {
			return g.Variants
		}
	}
	return nil
}
