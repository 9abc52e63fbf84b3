package domain

// DefaultPage is the page served when a list request omits it.
const DefaultPage = 1

// DefaultLimit is the page size served when a list request omits it.
const DefaultLimit = 10

// MaxLimit caps page size; larger values are rejected, not clamped.
const MaxLimit = 100

// DefaultSortBy is the column lists are ordered by unless told otherwise.
const DefaultSortBy = "created_at"

// SortOrder is a list ordering direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ListParams is a validated, normalized list request handed to repositories.
// Filters are keyed by column name; only keys declared by a query DTO reach here.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
	Filters   map[string]any
}

// Offset returns the row offset for the requested page.
func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Page is one page of a list result.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// TotalPages returns the number of pages for the total count.
func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
