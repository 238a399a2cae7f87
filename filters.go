package restkit

import (
	"net/http"
	"strconv"
)

// QueryFilter provides options for filtering index queries.
type QueryFilter struct {
	// Column/direction ordering, e.g. "created_at DESC"
	Order string

	// Pagination
	Limit  int
	Offset int
}

// defaultQueryLimit caps index results when the request asks for nothing
// specific.
const defaultQueryLimit = 100

// NewQueryFilter creates a QueryFilter with default values.
func NewQueryFilter() QueryFilter {
	return QueryFilter{
		Limit: defaultQueryLimit,
	}
}

// QueryFilterFromRequest builds a filter from the request's "limit",
// "offset" and "order" query parameters. Unparseable or missing values fall
// back to defaults.
func QueryFilterFromRequest(r *http.Request) QueryFilter {
	f := NewQueryFilter()
	if r == nil {
		return f
	}
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		f.Limit = v
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		f.Offset = v
	}
	if order := q.Get("order"); order != "" {
		f.Order = order
	}
	return f
}

// WithOrder sets the ordering clause.
func (f QueryFilter) WithOrder(order string) QueryFilter {
	f.Order = order
	return f
}

// WithLimit sets the limit for results.
func (f QueryFilter) WithLimit(limit int) QueryFilter {
	f.Limit = limit
	return f
}

// WithOffset sets the offset for pagination.
func (f QueryFilter) WithOffset(offset int) QueryFilter {
	f.Offset = offset
	return f
}

// WithPagination sets both limit and offset.
func (f QueryFilter) WithPagination(limit, offset int) QueryFilter {
	f.Limit = limit
	f.Offset = offset
	return f
}
