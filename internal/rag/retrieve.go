package rag

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// stopwords never count towards term overlap.
var stopwords = map[string]struct{}{ //nolint: gochecknoglobals
	"the": {}, "and": {}, "for": {}, "are": {}, "what": {}, "how": {}, "why": {}, "does": {},
	"with": {}, "from": {}, "that": {}, "this": {}, "into": {}, "about": {}, "can": {},
	"you": {}, "your": {}, "was": {}, "were": {}, "has": {}, "have": {}, "its": {}, "not": {},
	"but": {}, "all": {}, "any": {}, "our": {}, "which": {}, "who": {}, "when": {}, "where": {},
}

// terms returns the distinct lowercase words of s that carry meaning.
func terms(s string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, w := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(w) < 3 { //nolint: mnd
			continue
		}
		if _, ok := stopwords[w]; ok {
			continue
		}
		out[w] = struct{}{}
	}

	return out
}

// rankByOverlap orders documents by the number of question terms they share,
// keeping corpus order on ties, and returns the first k indexes.
func rankByOverlap(docs []Document, question string, k int) []int {
	q := terms(question)
	scores := make([]float64, len(docs))
	for i, d := range docs {
		for t := range q {
			if _, ok := d.terms[t]; ok {
				scores[i]++
			}
		}
	}

	return topK(scores, k)
}

// rankByVector orders documents by cosine similarity to the question vector.
func rankByVector(vectors [][]float32, question []float32, k int) []int {
	scores := make([]float64, len(vectors))
	for i, v := range vectors {
		scores[i] = cosine(v, question)
	}

	return topK(scores, k)
}

func topK(scores []float64, k int) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })
	if k < len(idx) {
		idx = idx[:k]
	}

	return idx
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}

	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
