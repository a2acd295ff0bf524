package project

import "strings"

// MatchesCategory reports whether any tag in the project's tech stack contains
// category as a case-insensitive substring. An empty category matches everything.
func MatchesCategory(p Project, category string) bool {
	if category == "" {
		return true
	}
	needle := strings.ToLower(category)
	for _, tag := range p.TechStack {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// MatchesSearch reports whether the trimmed search text occurs in the title or
// description, ignoring case. Blank search text matches everything.
func MatchesSearch(p Project, search string) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle)
}

// Matches is the list filter: both the category and the search condition must hold.
func Matches(p Project, q Query) bool {
	return MatchesCategory(p, q.Category) && MatchesSearch(p, q.Search)
}

// Filter returns the projects matching q, preserving input order.
func Filter(ps []Project, q Query) []Project {
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}
