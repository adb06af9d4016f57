package query

import (
	"strings"

	"github.com/vegasq/tabview/record"
)

// Matches reports whether a record satisfies the term.
//
// Terms with an empty operand never match; without that rule an empty
// needle would be contained in every string.
func (t Term) Matches(r record.Record) bool {
	if t.Operand == "" {
		return false
	}

	switch t.Kind {
	case TermEqual:
		v, ok := r.Get(t.Field)
		if !ok {
			return false
		}
		return containsFold(v.String(), t.Operand)

	case TermGreater, TermLess:
		v, ok := r.Get(t.Field)
		if !ok {
			return false
		}
		left, ok := record.ParseNumber(v.String())
		if !ok {
			return false
		}
		right, ok := record.ParseNumber(t.Operand)
		if !ok {
			return false
		}
		if t.Kind == TermGreater {
			return left > right
		}
		return left < right

	case TermFreeText:
		for _, v := range r.Values() {
			if containsFold(v.String(), t.Operand) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// Matches reports whether a record satisfies every term. An empty list
// matches all records.
func (ts Terms) Matches(r record.Record) bool {
	for _, t := range ts {
		if !t.Matches(r) {
			return false
		}
	}
	return true
}

// ApplyFilter returns the records matching all terms, in input order.
//
// The input slice is never modified; the result is always a new slice.
func ApplyFilter(records []record.Record, terms Terms) []record.Record {
	filtered := make([]record.Record, 0, len(records))
	for _, r := range records {
		if terms.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// containsFold reports whether needle is a case-insensitive substring of s
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(needle))
}
