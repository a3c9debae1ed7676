package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     PaginationQuery
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"defaults", PaginationQuery{}, 1, 12, 0},
		{"explicit", PaginationQuery{Page: "3", Limit: "20"}, 3, 20, 40},
		{"garbage falls back", PaginationQuery{Page: "abc", Limit: "-4"}, 1, 12, 0},
		{"zero page", PaginationQuery{Page: "0", Limit: "5"}, 1, 5, 0},
		{"limit capped", PaginationQuery{Page: "2", Limit: "1000"}, 2, MaxLimit, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePagination(tt.query)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantSkip, p.Skip())
		})
	}
}

func TestNewPaginationMeta(t *testing.T) {
	meta := NewPaginationMeta(Pagination{Page: 1, Limit: 12}, 12)
	assert.Equal(t, 1, meta.Pages)
	assert.Equal(t, int64(12), meta.Total)

	meta = NewPaginationMeta(Pagination{Page: 1, Limit: 12}, 13)
	assert.Equal(t, 2, meta.Pages)

	meta = NewPaginationMeta(Pagination{Page: 1, Limit: 12}, 0)
	assert.Equal(t, 0, meta.Pages)
}

func TestFilterValue(t *testing.T) {
	assert.Equal(t, "", FilterValue("all"))
	assert.Equal(t, "", FilterValue(""))
	assert.Equal(t, "art", FilterValue("art"))
}
