package cmd

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/radikecosa/postkit/internal/content"
	"github.com/radikecosa/postkit/internal/frontmatter"
	"github.com/radikecosa/postkit/internal/models"
	"github.com/radikecosa/postkit/internal/testutil"
)

func writeDoc(t *testing.T, site *testutil.TempSite, name string, doc models.PostDocument) {
	t.Helper()

	data, err := frontmatter.Render(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	site.CreateFile("src/content/posts/"+name, string(data)+"\nBody of "+doc.Title+"\n")
}

// seedPosts writes a translated pair, an untranslated post and a draft
func seedPosts(t *testing.T, site *testutil.TempSite) {
	t.Helper()

	published := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	writeDoc(t, site, "two-sum.md", models.PostDocument{
		Title: "Two Sum", Published: published, Tags: []string{"algoritmos", "leetcode", "arrays"}, TOC: true, Lang: "es", Abbrlink: "two-sum",
	})
	writeDoc(t, site, "two-sum.en.md", models.PostDocument{
		Title: "Two Sum", Published: published, Tags: []string{"algoritmos", "leetcode"}, TOC: true, Lang: "en", Abbrlink: "two-sum",
	})
	writeDoc(t, site, "three-sum.md", models.PostDocument{
		Title: "Three Sum", Published: published.AddDate(0, 1, 0), Tags: []string{"algoritmos", "leetcode", "arrays"}, TOC: true, Lang: "es", Abbrlink: "three-sum",
	})
	writeDoc(t, site, "wip.md", models.PostDocument{
		Title: "WIP", Published: published, Tags: []string{"algoritmos"}, Draft: true, Lang: "es", Abbrlink: "wip",
	})
}

func TestListJSON(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)
	listJSON = true

	out, err := captureStdout(t, func() error { return runList(nil, nil) })
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}

	var posts []content.Post
	if err := json.Unmarshal([]byte(out), &posts); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, out)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts without drafts, got %d", len(posts))
	}
	if posts[0].Slug != "three-sum" {
		t.Errorf("expected newest post first, got %s", posts[0].Slug)
	}
}

func TestListFilters(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)

	listLang = "en"
	out, err := captureStdout(t, func() error { return runList(nil, nil) })
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	if !strings.Contains(out, "Found 1 post(s)") {
		t.Errorf("expected one en post, got:\n%s", out)
	}

	listLang = ""
	listTag = "missing"
	out, err = captureStdout(t, func() error { return runList(nil, nil) })
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	if !strings.Contains(out, "No posts found") {
		t.Errorf("expected no posts, got:\n%s", out)
	}
}

func TestListEmptySite(t *testing.T) {
	setupSite(t)

	out, err := captureStdout(t, func() error { return runList(nil, nil) })
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}
	if !strings.Contains(out, "No posts found") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestShow(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)

	out, err := captureStdout(t, func() error { return runShow(nil, []string{"two-sum"}) })
	if err != nil {
		t.Fatalf("show command failed: %v", err)
	}
	if strings.Count(out, `abbrlink: "two-sum"`) != 2 {
		t.Errorf("expected both variants, got:\n%s", out)
	}

	if err := runShow(nil, []string{"missing"}); err == nil {
		t.Error("expected error for unknown slug")
	}
}

func TestShowPrintsBlockAsWritten(t *testing.T) {
	site := setupSite(t)
	site.CreateFile("src/content/posts/custom.md",
		"---\ntitle: Custom\nabbrlink: custom\ncover: /img/cover.png\n---\nBody\n")

	out, err := captureStdout(t, func() error { return runShow(nil, []string{"custom"}) })
	if err != nil {
		t.Fatalf("show command failed: %v", err)
	}
	want := "# src/content/posts/custom.md\n---\ntitle: Custom\nabbrlink: custom\ncover: /img/cover.png\n---\n"
	if out != want {
		t.Errorf("expected the block as written:\n%q\ngot:\n%q", want, out)
	}
}

func TestCollectStats(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)

	posts, err := loadPosts()
	if err != nil {
		t.Fatalf("failed to load posts: %v", err)
	}
	stats := collectStats(posts, []string{"es", "en"})

	if stats.TotalPosts != 4 || stats.TotalSlugs != 3 {
		t.Errorf("expected 4 posts in 3 slugs, got %d in %d", stats.TotalPosts, stats.TotalSlugs)
	}
	if stats.Drafts != 1 {
		t.Errorf("expected 1 draft, got %d", stats.Drafts)
	}
	if stats.ByLocale["es"] != 3 || stats.ByLocale["en"] != 1 {
		t.Errorf("unexpected locale counts %v", stats.ByLocale)
	}
	if stats.TopTags[0].Tag != "algoritmos" || stats.TopTags[0].Count != 4 {
		t.Errorf("expected algoritmos x4 first, got %+v", stats.TopTags[0])
	}
	if len(stats.MonthlyActivity) != 2 || stats.MonthlyActivity[0].Month != "2026-10" {
		t.Errorf("unexpected monthly activity %+v", stats.MonthlyActivity)
	}
	if strings.Join(stats.Untranslated, ",") != "three-sum,wip" {
		t.Errorf("unexpected untranslated %v", stats.Untranslated)
	}
}

func TestStatsToon(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)
	statsToon = true

	out, err := captureStdout(t, func() error { return runStats(nil, nil) })
	if err != nil {
		t.Fatalf("stats command failed: %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected toon rather than JSON, got:\n%s", out)
	}
	if !strings.Contains(out, "algoritmos") || !strings.Contains(out, "three-sum") {
		t.Errorf("expected tags and untranslated slugs in output, got:\n%s", out)
	}
}

func TestTags(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)
	tagsJSON = true

	out, err := captureStdout(t, func() error { return runTags(nil, nil) })
	if err != nil {
		t.Fatalf("tags command failed: %v", err)
	}
	var tags []tagInfo
	if err := json.Unmarshal([]byte(out), &tags); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, out)
	}
	want := []tagInfo{{"algoritmos", 4}, {"leetcode", 3}, {"arrays", 2}}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d: expected %v, got %v", i, want[i], tags[i])
		}
	}
}

func TestTagRules(t *testing.T) {
	setupSite(t)
	tagsRules = true
	tagsJSON = true

	out, err := captureStdout(t, func() error { return runTags(nil, nil) })
	if err != nil {
		t.Fatalf("tags command failed: %v", err)
	}
	var info tagRules
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, out)
	}
	if strings.Join(info.Default, ",") != "algoritmos" {
		t.Errorf("unexpected default tags %v", info.Default)
	}
	if len(info.Rules) != 3 || info.Rules[0].Keyword != "leetcode" {
		t.Errorf("unexpected rules %+v", info.Rules)
	}
}

func TestSearch(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)
	searchJSON = true

	out, err := captureStdout(t, func() error { return runSearch(nil, []string{"three"}) })
	if err != nil {
		t.Fatalf("search command failed: %v", err)
	}
	var matches []content.Match
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, out)
	}
	if len(matches) != 1 || matches[0].Post.Slug != "three-sum" {
		t.Errorf("unexpected matches %+v", matches)
	}
}

func TestRelated(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)
	relatedJSON = true

	out, err := captureStdout(t, func() error { return runRelated(nil, []string{"three-sum"}) })
	if err != nil {
		t.Fatalf("related command failed: %v", err)
	}
	var matches []content.Match
	if err := json.Unmarshal([]byte(out), &matches); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, out)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 related post, got %+v", matches)
	}
	if matches[0].Post.Slug != "two-sum" || matches[0].Post.Locale != "es" || matches[0].Score != 100 {
		t.Errorf("unexpected match %+v", matches[0])
	}
}

func TestDiff(t *testing.T) {
	site := setupSite(t)
	seedPosts(t, site)

	out, err := captureStdout(t, func() error { return runDiff(nil, []string{"two-sum"}) })
	if err != nil {
		t.Fatalf("diff command failed: %v", err)
	}
	if !strings.Contains(out, "Tags removed: [arrays]") {
		t.Errorf("expected the missing arrays tag, got:\n%s", out)
	}

	if err := runDiff(nil, []string{"three-sum"}); err == nil {
		t.Error("expected error for a post without translation")
	}
}
