package content

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/radikecosa/postkit/internal/frontmatter"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/spf13/afero"
)

const dir = "src/content/posts"

func writePost(t *testing.T, fsys afero.Fs, name string, doc models.PostDocument) {
	t.Helper()

	content, err := frontmatter.Render(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if err := afero.WriteFile(fsys, filepath.Join(dir, name), content, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func seed(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	day := func(d int) time.Time { return time.Date(2026, 10, d, 12, 0, 0, 0, time.UTC) }

	writePost(t, fsys, "two-sum.md", models.PostDocument{
		Title: "Two Sum", Published: day(1), Tags: []string{"algoritmos", "leetcode"}, Lang: "es", Abbrlink: "two-sum",
	})
	writePost(t, fsys, "two-sum.en.md", models.PostDocument{
		Title: "Two Sum", Published: day(1), Tags: []string{"algoritmos", "leetcode"}, Lang: "en", Abbrlink: "two-sum",
	})
	writePost(t, fsys, "daily-log.md", models.PostDocument{
		Title: "Daily log", Published: day(5), Tags: []string{"algoritmos", "daily"}, Lang: "es", Abbrlink: "daily-log",
	})
	writePost(t, fsys, "wip.md", models.PostDocument{
		Title: "WIP", Published: day(9), Draft: true, Lang: "es", Abbrlink: "wip",
	})
	writePost(t, fsys, "about.md", models.PostDocument{
		Title: "About", Published: day(2), Pin: 1, Lang: "es", Abbrlink: "about",
	})
	// no front-matter, skipped
	if err := afero.WriteFile(fsys, filepath.Join(dir, "README.md"), []byte("# notes\n"), 0644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	if err := afero.WriteFile(fsys, filepath.Join(dir, "cover.png"), []byte{0x89}, 0644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}
	return fsys
}

func TestLoad(t *testing.T) {
	posts, err := Load(seed(t), dir, "es")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if len(posts) != 5 {
		t.Fatalf("expected 5 posts, got %d", len(posts))
	}

	// pinned first, then newest first
	if posts[0].Slug != "about" {
		t.Errorf("expected pinned post first, got %s", posts[0].Slug)
	}
	if posts[1].Slug != "wip" {
		t.Errorf("expected newest post second, got %s", posts[1].Slug)
	}
}

func TestLoadMissingDir(t *testing.T) {
	posts, err := Load(afero.NewMemMapFs(), dir, "es")
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestLocaleFallbacks(t *testing.T) {
	fsys := afero.NewMemMapFs()
	bare := []byte("---\ntitle: Bare\n---\n")
	for _, name := range []string{"bare.en.md", "Bare Notes.md", "v1.2.md"} {
		if err := afero.WriteFile(fsys, filepath.Join(dir, name), bare, 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	posts, err := Load(fsys, dir, "es")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	got := make(map[string]Post)
	for _, p := range posts {
		got[filepath.Base(p.Path)] = p
	}

	if p := got["bare.en.md"]; p.Locale != "en" || p.Slug != "bare" {
		t.Errorf("bare.en.md: expected en/bare, got %s/%s", p.Locale, p.Slug)
	}
	if p := got["Bare Notes.md"]; p.Locale != "es" || p.Slug != "bare-notes" {
		t.Errorf("Bare Notes.md: expected es/bare-notes, got %s/%s", p.Locale, p.Slug)
	}
	if p := got["v1.2.md"]; p.Locale != "es" {
		t.Errorf("v1.2.md: expected default locale, got %s", p.Locale)
	}
}

func TestFilter(t *testing.T) {
	posts, err := Load(seed(t), dir, "es")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "default hides drafts", filter: Filter{}, want: 4},
		{name: "with drafts", filter: Filter{Drafts: true}, want: 5},
		{name: "by tag", filter: Filter{Tag: "leetcode"}, want: 2},
		{name: "by locale", filter: Filter{Locale: "en"}, want: 1},
		{name: "tag and locale", filter: Filter{Tag: "daily", Locale: "en"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Apply(posts); len(got) != tt.want {
				t.Errorf("expected %d posts, got %d", tt.want, len(got))
			}
		})
	}
}

func TestGroupBySlug(t *testing.T) {
	posts, err := Load(seed(t), dir, "es")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	groups := GroupBySlug(posts)
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}

	variants := Find(posts, "two-sum")
	if len(variants) != 2 {
		t.Fatalf("expected 2 variants of two-sum, got %d", len(variants))
	}
	if variants[0].Locale == variants[1].Locale {
		t.Errorf("expected different locales, got %s twice", variants[0].Locale)
	}

	if Find(posts, "missing") != nil {
		t.Error("expected nil for unknown slug")
	}
}
