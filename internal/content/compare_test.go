package content

import (
	"reflect"
	"testing"
	"time"

	"github.com/radikecosa/postkit/internal/models"
)

func TestCompare(t *testing.T) {
	published := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	es := Post{Slug: "two-sum", Locale: "es", Doc: models.PostDocument{
		Title: "Two Sum", Published: published, Tags: []string{"algoritmos", "leetcode"}, TOC: true, Lang: "es",
	}}

	t.Run("in sync", func(t *testing.T) {
		en := es
		en.Locale = "en"
		en.Doc.Lang = "en"
		en.Doc.Title = "Two Sum (en)"

		d := Compare(es, en)
		if !d.InSync() {
			t.Errorf("expected variants in sync: %+v", d)
		}
		if !d.TitleChanged {
			t.Error("expected title change")
		}
		if !reflect.DeepEqual(d.TagsShared, []string{"algoritmos", "leetcode"}) {
			t.Errorf("unexpected shared tags %v", d.TagsShared)
		}
	})

	t.Run("drifted", func(t *testing.T) {
		en := es
		en.Doc.Published = published.Add(time.Hour)
		en.Doc.Draft = true
		en.Doc.Tags = []string{"leetcode", "arrays"}

		d := Compare(es, en)
		if d.InSync() {
			t.Error("expected drift")
		}
		if !d.PublishedChanged || !d.DraftChanged {
			t.Errorf("expected published and draft changes: %+v", d)
		}
		if d.PinChanged || d.TOCChanged {
			t.Errorf("unexpected pin/toc change: %+v", d)
		}
		if !reflect.DeepEqual(d.TagsAdded, []string{"arrays"}) {
			t.Errorf("expected [arrays] added, got %v", d.TagsAdded)
		}
		if !reflect.DeepEqual(d.TagsRemoved, []string{"algoritmos"}) {
			t.Errorf("expected [algoritmos] removed, got %v", d.TagsRemoved)
		}
	})
}
