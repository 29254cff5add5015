package search

import "sort"

// Field is one weighted piece of text on a document
type Field struct {
	Text   string
	Weight float64
}

// Weights used for name and description fields
const (
	NameWeight        = 2.0
	DescriptionWeight = 1.0
)

// Score rates a document against query tokens. Each distinct query token
// found in a field adds weight * (0.5 + 0.5 * freq/len(field tokens)).
// Zero means the document does not match.
func Score(query []string, fields ...Field) float64 {
	if len(query) == 0 {
		return 0
	}

	var score float64
	for _, f := range fields {
		tokens := Tokens(f.Text)
		if len(tokens) == 0 {
			continue
		}
		freq := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			freq[tok]++
		}
		for _, q := range query {
			if n := freq[q]; n > 0 {
				score += f.Weight * (0.5 + 0.5*float64(n)/float64(len(tokens)))
			}
		}
	}
	return score
}

// Rank keeps the items that match query and orders them by descending score.
// Ties keep the input order.
func Rank[T any](items []T, query []string, fields func(T) []Field) []T {
	type scored struct {
		item  T
		score float64
	}

	matched := make([]scored, 0, len(items))
	for _, item := range items {
		if s := Score(query, fields(item)...); s > 0 {
			matched = append(matched, scored{item: item, score: s})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	out := make([]T, len(matched))
	for i, m := range matched {
		out[i] = m.item
	}
	return out
}
