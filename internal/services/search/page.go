package search

import "github.com/killallgit/podcast-api/pkg/pagination"

// Page ranks candidates against the query and cuts the requested page.
// Totals count ranked matches, not raw candidates.
func Page[T any](candidates []T, query []string, fields func(T) []Field, p *pagination.Params) pagination.Result[T] {
	return pagination.Slice(Rank(candidates, query, fields), p)
}

// Weighted pairs a name with NameWeight and a description with
// DescriptionWeight.
func Weighted(name, description string) []Field {
	return []Field{
		{Text: name, Weight: NameWeight},
		{Text: description, Weight: DescriptionWeight},
	}
}
