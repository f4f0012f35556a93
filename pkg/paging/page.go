package paging

import "strings"

// Direction is the sort direction for a page query.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection normalizes a query-string direction, defaulting to Desc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Asc)) {
		return Asc
	}
	return Desc
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Request describes the page a caller wants: zero-based page number, page
// size and sort direction.
type Request struct {
	Page      int
	Size      int
	Direction Direction
}

// NewRequest clamps the raw paging parameters into a usable Request.
func NewRequest(page, size int, direction Direction) Request {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if direction != Asc && direction != Desc {
		direction = Desc
	}
	return Request{Page: page, Size: size, Direction: direction}
}

// Offset returns the row offset for the request.
func (r Request) Offset() int { return r.Page * r.Size }

// Page is one page of a larger result set. First, Last and TotalPages are
// derived from the page number, size and total element count.
type Page[T any] struct {
	Items         []T
	Number        int
	Size          int
	TotalElements int64
}

// NewPage builds a page from the items of one query plus the total count.
func NewPage[T any](items []T, req Request, totalElements int64) Page[T] {
	return Page[T]{
		Items:         items,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: totalElements,
	}
}

// TotalPages returns the number of pages needed for all elements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// First reports whether this is the first page.
func (p Page[T]) First() bool { return p.Number == 0 }

// Last reports whether this is the last page.
func (p Page[T]) Last() bool { return p.Number >= p.TotalPages()-1 }

// Map converts a page of one item type into a page of another, keeping the
// paging metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	items := make([]U, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, fn(it))
	}
	return Page[U]{
		Items:         items,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
	}
}
