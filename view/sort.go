package view

import (
	"sort"

	"github.com/vegasq/tabview/record"
)

// Sort returns records ordered by field.
//
// The sort is stable: records with equal keys keep their input order in
// both directions, since the direction only flips the comparison. Records
// missing the field sort first ascending and last descending. An empty
// field returns a copy in input order.
func Sort(records []record.Record, field string, dir Direction) []record.Record {
	sorted := make([]record.Record, len(records))
	copy(sorted, records)

	if field == "" || len(sorted) < 2 {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareField(sorted[i], sorted[j], field)
		if dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}

// compareField compares two records on one field. A missing value is
// smaller than any present value.
func compareField(a, b record.Record, field string) int {
	va, okA := a.Get(field)
	vb, okB := b.Get(field)

	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	default:
		return record.Compare(va, vb)
	}
}
