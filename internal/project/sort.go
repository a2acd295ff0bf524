package project

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort returns a copy of ps ordered by key. The sort is stable, so projects
// with equal keys keep their fetch order. Unknown keys return an unsorted copy.
func Sort(ps []Project, key SortKey) []Project {
	out := slices.Clone(ps)

	switch key {
	case SortTitleAsc, SortTitleDesc:
		// Collators keep internal buffers and are not safe for concurrent use.
		col := collate.New(language.English)
		if key == SortTitleAsc {
			slices.SortStableFunc(out, func(a, b Project) int {
				return col.CompareString(a.Title, b.Title)
			})
		} else {
			slices.SortStableFunc(out, func(a, b Project) int {
				return col.CompareString(b.Title, a.Title)
			})
		}
	case SortDateNewest:
		slices.SortStableFunc(out, func(a, b Project) int {
			return b.addedAt().Compare(a.addedAt())
		})
	case SortDateOldest:
		slices.SortStableFunc(out, func(a, b Project) int {
			return a.addedAt().Compare(b.addedAt())
		})
	}

	return out
}
