package content

import "sort"

// VariantDiff lists where two locale variants of a post disagree
type VariantDiff struct {
	From             Post     `json:"from"`
	To               Post     `json:"to"`
	TitleChanged     bool     `json:"title_changed"`
	PublishedChanged bool     `json:"published_changed"`
	DraftChanged     bool     `json:"draft_changed"`
	PinChanged       bool     `json:"pin_changed"`
	TOCChanged       bool     `json:"toc_changed"`
	TagsAdded        []string `json:"tags_added"`
	TagsRemoved      []string `json:"tags_removed"`
	TagsShared       []string `json:"tags_shared"`
}

// InSync reports whether the variants agree on everything except the title
func (d VariantDiff) InSync() bool {
	return !d.PublishedChanged && !d.DraftChanged && !d.PinChanged && !d.TOCChanged &&
		len(d.TagsAdded) == 0 && len(d.TagsRemoved) == 0
}

// Compare diffs the front-matter of two variants. Tags added are the ones
// in to but not in from.
func Compare(from, to Post) VariantDiff {
	a, b := from.Doc, to.Doc
	d := VariantDiff{
		From:             from,
		To:               to,
		TitleChanged:     a.Title != b.Title,
		PublishedChanged: !a.Published.Equal(b.Published),
		DraftChanged:     a.Draft != b.Draft,
		PinChanged:       a.Pin != b.Pin,
		TOCChanged:       a.TOC != b.TOC,
		TagsAdded:        []string{},
		TagsRemoved:      []string{},
		TagsShared:       []string{},
	}

	inFrom := make(map[string]bool)
	inTo := make(map[string]bool)
	for _, tag := range a.Tags {
		inFrom[tag] = true
	}
	for _, tag := range b.Tags {
		inTo[tag] = true
	}

	for tag := range inFrom {
		if inTo[tag] {
			d.TagsShared = append(d.TagsShared, tag)
		} else {
			d.TagsRemoved = append(d.TagsRemoved, tag)
		}
	}
	for tag := range inTo {
		if !inFrom[tag] {
			d.TagsAdded = append(d.TagsAdded, tag)
		}
	}
	sort.Strings(d.TagsAdded)
	sort.Strings(d.TagsRemoved)
	sort.Strings(d.TagsShared)

	return d
}
