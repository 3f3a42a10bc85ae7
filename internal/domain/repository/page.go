package repository

const (
	// DefaultPageSize is used when a request does not ask for a size.
	DefaultPageSize = 50
	// MaxPageSize caps the size of a single page.
	MaxPageSize = 500
)

// SortOrder sorts by one whitelisted field.
type SortOrder struct {
	Field      string
	Descending bool
}

// PageRequest selects a zero-based page of results.
type PageRequest struct {
	Page int
	Size int
	Sort []SortOrder
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	n := p.Normalize()

	return n.Page * n.Size
}

// Normalize clamps page and size into the accepted range.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}

	return p
}

// Page is one slice of a larger result set.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Size  int
}

// NewPage builds a page for the given request.
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	req = req.Normalize()
	if items == nil {
		items = make([]T, 0)
	}

	return &Page[T]{Items: items, Total: total, Page: req.Page, Size: req.Size}
}
