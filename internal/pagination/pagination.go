// Package pagination computes offset/limit windows and page-count metadata.
// It is pure arithmetic: callers supply the total row count from their own
// count query and run the windowed read themselves.
package pagination

const DefaultPageSize = 10

// Window is one resolved page of an ordered collection plus the metadata
// clients need to navigate it.
type Window struct {
	Offset      int
	Limit       int
	CurrentPage int
	TotalPages  int
	PageSize    int
	TotalRows   int64
}

// Compute clamps the requested page and size and derives the window. Inputs
// are never rejected: page < 1 becomes 1, pageSize < 1 becomes
// DefaultPageSize. An empty collection yields zero total pages.
func Compute(page, pageSize int, totalRows int64) Window {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := int((totalRows + int64(pageSize) - 1) / int64(pageSize))

	return Window{
		Offset:      (page - 1) * pageSize,
		Limit:       pageSize,
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalRows:   totalRows,
	}
}
