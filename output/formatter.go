package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabview/record"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to convert records to the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes records in the formatter's specific format
	Format(records []record.Record) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// ErrUnsupportedFormat is returned by NewFormatter for an unknown format name
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats lists the names accepted by NewFormatter
var Formats = []string{"csv", "json", "jsonl", "table"}

// NewFormatter returns the formatter for a format name
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(format) {
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}
}

// header returns the field names of the first record
func header(records []record.Record) []string {
	if len(records) == 0 {
		return nil
	}
	return records[0].Fields()
}

// cell renders a field of r, or "" when the field is missing
func cell(r record.Record, field string) string {
	v, ok := r.Get(field)
	if !ok {
		return ""
	}
	return v.String()
}
