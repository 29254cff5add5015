// Package pagination implements page-windowed listing: 1-based pages,
// clamped parameters and the {data, pagination} envelope.
package pagination

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DefaultLimit is the page size used when none (or an invalid one) is given.
const DefaultLimit = 10

// Params is a validated page request. A nil *Params means "no pagination".
type Params struct {
	Page    int
	PerPage int
}

// Info describes the page returned alongside the data.
type Info struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalPage    int `json:"total_page"`
	TotalResults int `json:"total_results"`
}

// Parse builds Params from raw offset/limit query values.
// It returns nil when neither value is present and parseable. Values below 1
// are clamped: page to 1, limit to defaultLimit.
func Parse(offset, limit string, defaultLimit int) *Params {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}

	page, pageOK := parseInt(offset)
	perPage, perPageOK := parseInt(limit)
	if !pageOK && !perPageOK {
		return nil
	}

	return New(page, perPage, defaultLimit)
}

// New returns clamped Params.
func New(page, perPage, defaultLimit int) *Params {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultLimit
	}
	return &Params{Page: page, PerPage: perPage}
}

func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Offset is the number of records to skip.
func (p *Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Window returns the [start, end) bounds of the page within total items.
func (p *Params) Window(total int) (int, int) {
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PerPage
	if end > total {
		end = total
	}
	return start, end
}

// TotalPages is ceil(total / perPage).
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		return 0
	}
	pages := total / perPage
	if total%perPage > 0 {
		pages++
	}
	return pages
}

// NewInfo computes page information for total results.
func NewInfo(p *Params, total int) *Info {
	return &Info{
		Page:         p.Page,
		PerPage:      p.PerPage,
		TotalPage:    TotalPages(total, p.PerPage),
		TotalResults: total,
	}
}

// Result is either a flat list (Info == nil) or a page with its envelope.
type Result[T any] struct {
	Items []T
	Info  *Info
}

type envelope[T any] struct {
	Data       []T   `json:"data"`
	Pagination *Info `json:"pagination"`
}

// MarshalJSON emits a bare array when unpaginated, the envelope otherwise.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	items := r.Items
	if items == nil {
		items = []T{}
	}
	if r.Info == nil {
		return json.Marshal(items)
	}
	return json.Marshal(envelope[T]{Data: items, Pagination: r.Info})
}

// Paginated reports whether the result carries an envelope.
func (r Result[T]) Paginated() bool {
	return r.Info != nil
}

// Slice pages an in-memory list. With nil params the whole list is returned.
func Slice[T any](items []T, p *Params) Result[T] {
	if p == nil {
		return Result[T]{Items: items}
	}
	start, end := p.Window(len(items))
	return Result[T]{Items: items[start:end], Info: NewInfo(p, len(items))}
}

// Map converts the items of a result, keeping its page information.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	out := make([]U, len(r.Items))
	for i, item := range r.Items {
		out[i] = fn(item)
	}
	return Result[U]{Items: out, Info: r.Info}
}
