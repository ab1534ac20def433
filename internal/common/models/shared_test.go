package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		page  int64
		limit int64
		want  int64
	}{
		{"uneven division rounds up", 25, 1, 10, 3},
		{"exact division", 30, 2, 10, 3},
		{"single partial page", 7, 1, 10, 1},
		{"empty collection", 0, 1, 10, 0},
		{"limit one", 3, 1, 1, 3},
		{"zero limit uses default", 25, 1, 0, 3},
		{"negative limit uses default", 25, 1, -5, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaginated([]string{}, tc.total, tc.page, tc.limit)
			assert.Equal(t, tc.want, p.TotalPages)
			assert.Equal(t, tc.page, p.CurrentPage)
			assert.Equal(t, tc.total, p.Total)
		})
	}
}

func TestNewPaginatedCarriesItems(t *testing.T) {
	items := []int{1, 2, 3}
	p := NewPaginated(items, 3, 1, 10)
	assert.Equal(t, items, p.Items)
}
