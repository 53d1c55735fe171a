package content

import (
	"fmt"
	"math"
	"sort"
)

// CosineSimilarity calculates the cosine similarity between two vectors
// Returns a value between -1 and 1, where 1 means identical direction
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vectors must have same length: %d vs %d", len(a), len(b))
	}

	if len(a) == 0 {
		return 0, fmt.Errorf("vectors cannot be empty")
	}

	dotProduct := 0.0
	normA := 0.0
	normB := 0.0

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)

	if normA == 0 || normB == 0 {
		return 0, fmt.Errorf("vector norm cannot be zero")
	}

	similarity := dotProduct / (normA * normB)

	// Clamp to [-1, 1] to handle floating point errors
	if similarity > 1.0 {
		similarity = 1.0
	} else if similarity < -1.0 {
		similarity = -1.0
	}

	return similarity, nil
}

// tagSpace maps every tag in use to a vector dimension
type tagSpace struct {
	index  map[string]int
	ignore map[string]bool
}

func newTagSpace(posts []Post, ignore []string) *tagSpace {
	s := &tagSpace{index: make(map[string]int), ignore: make(map[string]bool)}
	for _, tag := range ignore {
		s.ignore[tag] = true
	}

	var tags []string
	for _, p := range posts {
		for _, tag := range p.Doc.Tags {
			if _, ok := s.index[tag]; !ok && !s.ignore[tag] {
				s.index[tag] = 0
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	for i, tag := range tags {
		s.index[tag] = i
	}
	return s
}

// vector is the 0/1 tag membership of tags
func (s *tagSpace) vector(tags []string) []float64 {
	v := make([]float64, len(s.index))
	for _, tag := range tags {
		if i, ok := s.index[tag]; ok {
			v[i] = 1
		}
	}
	return v
}
