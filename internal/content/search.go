package content

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Match is a post ranked against a query or another post
type Match struct {
	Post   Post   `json:"post"`
	Score  int    `json:"score"`
	Reason string `json:"reason,omitempty"`
}

// Search ranks posts by keyword relevance to query. Posts with no hit are
// left out.
func Search(posts []Post, query string) []Match {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return nil
	}

	var matches []Match
	for _, p := range posts {
		if score := relevance(words, p); score > 0 {
			matches = append(matches, Match{Post: p, Score: score})
		}
	}
	rank(matches)
	return matches
}

func relevance(words []string, p Post) int {
	title := strings.ToLower(p.Doc.Title)
	text := strings.ToLower(strings.Join([]string{
		p.Doc.Title,
		p.Doc.Description,
		strings.Join(p.Doc.Tags, " "),
		p.Body,
	}, " "))

	score := 0
	for _, word := range words {
		score += strings.Count(text, word) * 10

		if strings.Contains(title, word) {
			score += 50
		}
		for _, tag := range p.Doc.Tags {
			if strings.Contains(strings.ToLower(tag), word) {
				score += 30
			}
		}
	}
	return score
}

// Related ranks the other posts by how similar their tags are to the post
// with slug. Tags in ignore (usually the defaults every post carries) do
// not count. One variant per slug is returned, preferring the locale of
// the first variant of slug.
func Related(posts []Post, slug string, ignore []string) ([]Match, error) {
	variants := Find(posts, slug)
	if len(variants) == 0 {
		return nil, fmt.Errorf("post not found: %s", slug)
	}
	target := variants[0]

	space := newTagSpace(posts, ignore)
	if len(space.index) == 0 {
		return nil, nil
	}
	want := space.vector(target.Doc.Tags)

	var matches []Match
	for _, g := range GroupBySlug(posts) {
		if g.Slug == slug {
			continue
		}
		candidate := pickVariant(g.Variants, target.Locale)

		similarity, err := CosineSimilarity(want, space.vector(candidate.Doc.Tags))
		if err != nil || similarity <= 0 {
			continue
		}
		matches = append(matches, Match{
			Post:   candidate,
			Score:  int(math.Round(similarity * 100)),
			Reason: fmt.Sprintf("%d shared tags", sharedTags(target.Doc.Tags, candidate.Doc.Tags, space)),
		})
	}
	rank(matches)
	return matches, nil
}

func pickVariant(variants []Post, locale string) Post {
	for _, v := range variants {
		if v.Locale == locale {
			return v
		}
	}
	return variants[0]
}

func sharedTags(a, b []string, space *tagSpace) int {
	n := 0
	for _, x := range a {
		if space.ignore[x] {
			continue
		}
		for _, y := range b {
			if x == y {
				n++
				break
			}
		}
	}
	return n
}

// rank sorts by score, highest first, keeping the post order for ties
func rank(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}
