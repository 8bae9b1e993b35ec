package domain

// PaginationParams holds offset-based pagination parameters for list
// endpoints.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the element offset for the current page (0-based).
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Slice returns the [start, end) bounds for applying p to a list of n
// elements, clamped to the list.
func (p PaginationParams) Slice(n int) (start, end int) {
	start = p.Offset()
	if start > n {
		start = n
	}
	end = start + p.PageSize
	if p.PageSize <= 0 || end > n {
		end = n
	}
	return start, end
}
