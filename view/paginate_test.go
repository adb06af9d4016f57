package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vegasq/tabview/record"
)

func TestPaginate(t *testing.T) {
	items := users(10)

	tests := []struct {
		name        string
		page        int
		rowsPerPage int
		wantIDs     []string
		wantPages   int
	}{
		{"first page", 1, 4, []string{"1", "2", "3", "4"}, 3},
		{"middle page", 2, 4, []string{"5", "6", "7", "8"}, 3},
		{"last partial page", 3, 4, []string{"9", "10"}, 3},
		{"past the end", 4, 4, []string{}, 3},
		{"far past the end", 1 << 40, 4, []string{}, 3},
		{"single page", 1, 10, field(items, "id"), 1},
		{"page size larger than input", 1, 25, field(items, "id"), 1},
		{"zero page", 0, 4, []string{}, 3},
		{"negative page", -1, 4, []string{}, 3},
		{"zero rows per page", 1, 0, []string{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, total := Paginate(items, tt.page, tt.rowsPerPage)
			assert.Equal(t, tt.wantIDs, field(rows, "id"))
			assert.Equal(t, tt.wantPages, total)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	rows, total := Paginate(nil, 1, 10)
	assert.Empty(t, rows)
	assert.Equal(t, 1, total)
}

func TestPaginate_Conservation(t *testing.T) {
	for _, n := range []int{0, 1, 7, 10, 50} {
		items := users(n)
		for _, size := range []int{1, 3, 4, 10, 60} {
			_, total := Paginate(items, 1, size)

			var all []record.Record
			for p := 1; p <= total; p++ {
				rows, _ := Paginate(items, p, size)
				all = append(all, rows...)
			}
			assert.Equal(t, field(items, "id"), field(all, "id"), "n=%d size=%d", n, size)
		}
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 50, TotalPages(50, 1))
	assert.Equal(t, 1, TotalPages(5, -3))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-4, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
	assert.Equal(t, 1, ClampPage(2, 0))
}
