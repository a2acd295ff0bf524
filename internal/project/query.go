package project

import "strings"

// PageSize is the number of projects shown per page.
const PageSize = 6

// SortKey selects the ordering of the project list.
type SortKey string

const (
	SortTitleAsc   SortKey = "title_asc"
	SortTitleDesc  SortKey = "title_desc"
	SortDateNewest SortKey = "date_newest"
	SortDateOldest SortKey = "date_oldest"
)

// SortOption is a selectable ordering with its display label.
type SortOption struct {
	Key   SortKey
	Label string
}

// SortOptions lists the orderings in display order. The first entry is the default.
var SortOptions = []SortOption{
	{Key: SortTitleAsc, Label: "Title: A → Z"},
	{Key: SortTitleDesc, Label: "Title: Z → A"},
	{Key: SortDateNewest, Label: "Newest First"},
	{Key: SortDateOldest, Label: "Oldest First"},
}

// DefaultSort is the ordering applied on load and after clearing filters.
var DefaultSort = SortOptions[0].Key

// Category is a filter tab. An empty Filter means no filtering.
type Category struct {
	Label  string
	Filter string
}

// Categories lists the filter tabs in display order.
var Categories = []Category{
	{Label: "All", Filter: ""},
	{Label: "React", Filter: "React"},
	{Label: "Node.js", Filter: "Node.js"},
	{Label: "Design", Filter: "Design"},
	{Label: "API", Filter: "API"},
}

// Query holds the user-chosen search, filter, sort and page parameters.
type Query struct {
	Search   string
	Category string
	Sort     SortKey
	Page     int
}

// DefaultQuery returns the query a freshly mounted list starts with.
func DefaultQuery() Query {
	return Query{Sort: DefaultSort, Page: 1}
}

// IsDefault reports whether search, category and sort are all at their defaults.
// The page number is not considered.
func (q Query) IsDefault() bool {
	return q.Search == "" && q.Category == "" && q.Sort == DefaultSort
}

// ParseSortKey maps a raw value to a known SortKey, falling back to DefaultSort.
func ParseSortKey(raw string) SortKey {
	key := SortKey(strings.TrimSpace(raw))
	for _, opt := range SortOptions {
		if opt.Key == key {
			return key
		}
	}
	return DefaultSort
}

// ParseCategory maps a raw value to a known category filter. Unknown values
// are treated as no filter.
func ParseCategory(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(c.Filter, raw) {
			return c.Filter
		}
	}
	return ""
}
