package view

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is a sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc"
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

var (
	// ErrInvalidDirection is returned for a direction other than asc/desc
	ErrInvalidDirection = errors.New("invalid sort direction")

	// ErrInvalidPage is returned when the page number is below 1
	ErrInvalidPage = errors.New("page must be at least 1")

	// ErrInvalidRowsPerPage is returned when rows per page is not positive
	ErrInvalidRowsPerPage = errors.New("rows per page must be positive")
)

// ParseDirection parses "asc" or "desc" (case-insensitive)
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q (want asc or desc)", ErrInvalidDirection, s)
	}
}

// Config is the caller-owned view state. Methods return modified copies;
// a Config is never changed in place.
type Config struct {
	Query       string
	SortField   string
	Direction   Direction
	Page        int // 1-based
	RowsPerPage int
}

// DefaultConfig returns the initial state: sorted by name ascending, first
// page of ten rows, no filter.
func DefaultConfig() Config {
	return Config{
		SortField:   "name",
		Direction:   Ascending,
		Page:        1,
		RowsPerPage: 10,
	}
}

// Validate checks page and rows-per-page
func (c Config) Validate() error {
	if c.Page < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, c.Page)
	}
	if c.RowsPerPage < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRowsPerPage, c.RowsPerPage)
	}
	return nil
}

// WithQuery sets the query and goes back to the first page
func (c Config) WithQuery(q string) Config {
	c.Query = q
	c.Page = 1
	return c
}

// WithRowsPerPage sets the page size and goes back to the first page.
// Non-positive sizes are ignored.
func (c Config) WithRowsPerPage(n int) Config {
	if n <= 0 {
		return c
	}
	c.RowsPerPage = n
	c.Page = 1
	return c
}

// ToggleSort sorts by field; sorting again by the current field flips the
// direction, a new field starts ascending.
func (c Config) ToggleSort(field string) Config {
	if c.SortField == field {
		c.Direction = c.Direction.Flip()
		return c
	}
	c.SortField = field
	c.Direction = Ascending
	return c
}

// WithPage moves to page, clamped into [1, totalPages]
func (c Config) WithPage(page, totalPages int) Config {
	c.Page = ClampPage(page, totalPages)
	return c
}

// NextPage advances one page without passing totalPages
func (c Config) NextPage(totalPages int) Config {
	return c.WithPage(c.Page+1, totalPages)
}

// PrevPage goes back one page without going below 1
func (c Config) PrevPage(totalPages int) Config {
	return c.WithPage(c.Page-1, totalPages)
}
