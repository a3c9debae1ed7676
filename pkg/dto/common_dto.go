package dto

import (
	"io"
	"math"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100

	// FilterAll is the query value that disables a filter.
	FilterAll = "all"
)

// PaginationQuery is bound from ?page=&limit=. Raw strings so bad input falls back to defaults
// instead of failing the request.
type PaginationQuery struct {
	Page  string `form:"page"`
	Limit string `form:"limit"`
}

type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination applies defaults (page 1, limit 12) and caps limit at MaxLimit.
func ParsePagination(q PaginationQuery) Pagination {
	p := Pagination{Page: DefaultPage, Limit: DefaultLimit}

	if page, err := strconv.Atoi(q.Page); err == nil && page > 0 {
		p.Page = page
	}
	if limit, err := strconv.Atoi(q.Limit); err == nil && limit > 0 {
		p.Limit = limit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Skip is the zero-based row offset of the page.
func (p Pagination) Skip() int {
	return (p.Page - 1) * p.Limit
}

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPaginationMeta(p Pagination, total int64) PaginationMeta {
	pages := 0
	if p.Limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}
	return PaginationMeta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}

// FilterValue returns "" for empty or "all" values.
func FilterValue(v string) string {
	if v == FilterAll {
		return ""
	}
	return v
}

// UploadFile is an uploaded file handed from a handler to a service.
type UploadFile struct {
	Reader   io.Reader
	FileName string
}
