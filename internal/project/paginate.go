package project

// TotalPages returns ceil(n/size). It is 0 for an empty list.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the 1-based page of ps with the given size, clamped to the
// slice bounds. Pages before the first or past the last are empty.
func Paginate(ps []Project, page, size int) []Project {
	if page < 1 || size <= 0 {
		return []Project{}
	}
	start := (page - 1) * size
	if start >= len(ps) {
		return []Project{}
	}
	end := min(start+size, len(ps))
	return ps[start:end:end]
}

// ClampPage moves page into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	upper := max(1, totalPages)
	if page < 1 {
		return 1
	}
	if page > upper {
		return upper
	}
	return page
}
