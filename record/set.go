package record

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrMissingID is returned when a record lacks the identifier field
	ErrMissingID = errors.New("identifier field missing")

	// ErrDuplicateID is returned when two records share an identifier
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrHeterogeneous is returned when a record's fields differ from the first record's
	ErrHeterogeneous = errors.New("records do not share the same fields")
)

// Validate checks the set invariants: every record carries idField with a
// value unique across the set, and every record has the same field names
// (in any order) as the first one. An empty idField skips the identifier
// checks.
func Validate(records []Record, idField string) error {
	if len(records) == 0 {
		return nil
	}

	header := records[0].Fields()
	seenIDs := make(map[string]int, len(records))

	for i, r := range records {
		if !sameFields(header, r) {
			return fmt.Errorf("%w: record %d has fields %v, want %v", ErrHeterogeneous, i, r.Fields(), header)
		}

		if idField == "" {
			continue
		}
		id, ok := r.values[idField]
		if !ok {
			return fmt.Errorf("%w: record %d has no %q", ErrMissingID, i, idField)
		}
		key := id.Kind().String() + ":" + id.String()
		if prev, dup := seenIDs[key]; dup {
			return fmt.Errorf("%w: %s=%s in records %d and %d", ErrDuplicateID, idField, id, prev, i)
		}
		seenIDs[key] = i
	}

	return nil
}

func sameFields(header []string, r Record) bool {
	if len(header) != r.Len() {
		return false
	}
	for _, name := range header {
		if _, ok := r.values[name]; !ok {
			return false
		}
	}
	return true
}

// Dataset is an immutable record set tagged with a revision. Two datasets
// with the same revision hold the same records, which lets callers memoize
// derived views by revision instead of by content.
type Dataset struct {
	Revision string
	Records  []Record
}

// NewDataset wraps records with a freshly generated revision
func NewDataset(records []Record) Dataset {
	return Dataset{
		Revision: uuid.NewString(),
		Records:  records,
	}
}

// Len returns the number of records
func (d Dataset) Len() int {
	return len(d.Records)
}
