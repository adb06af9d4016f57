package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Example(t *testing.T) {
	cfg := Config{
		Query:       "region:North sales>5000",
		SortField:   "sales",
		Direction:   Descending,
		Page:        1,
		RowsPerPage: 10,
	}

	v, err := Build(salesRecords(), cfg)
	require.NoError(t, err)

	assert.Len(t, v.Terms, 2)
	assert.Equal(t, []string{"1", "3"}, field(v.Filtered, "id"))
	assert.Equal(t, []string{"3", "1"}, field(v.Ordered, "id"))
	assert.Equal(t, []string{"3", "1"}, field(v.Rows, "id"))
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, 2, v.Total())
	assert.Equal(t, "Showing 2 of 2 entries", v.Summary())
}

func TestBuild_Paged(t *testing.T) {
	cfg := DefaultConfig().ToggleSort("id").WithRowsPerPage(4)
	cfg.Page = 2

	v, err := Build(users(10), cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"5", "6", "7", "8"}, field(v.Rows, "id"))
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, "Showing 4 of 10 entries", v.Summary())
}

func TestBuild_DefaultSortsByName(t *testing.T) {
	v, err := Build(users(12), DefaultConfig())
	require.NoError(t, err)

	// ordinal text order: User1, User10, User11, User12, User2, ...
	assert.Equal(t, []string{"User1", "User10", "User11", "User12", "User2"}, field(v.Rows, "name")[:5])
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RowsPerPage = -1

	_, err := Build(users(3), cfg)
	assert.ErrorIs(t, err, ErrInvalidRowsPerPage)
}

func TestBuild_NoMatches(t *testing.T) {
	v, err := Build(users(10), DefaultConfig().WithQuery("nobody-matches-this"))
	require.NoError(t, err)

	assert.Empty(t, v.Rows)
	assert.Equal(t, 1, v.TotalPages)
	assert.Equal(t, "Showing 0 of 0 entries", v.Summary())
}
