package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tabview/record"
)

// CSVFormatter outputs records as CSV text produced by ToCSV
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes records as CSV. Nothing is written for an empty set.
func (c *CSVFormatter) Format(records []record.Record) error {
	text := ToCSV(records)
	if text == "" {
		return nil
	}
	if _, err := io.WriteString(c.writer, text); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// ToCSV renders records as delimited text.
//
// The header is the field names of the first record, in its field order,
// followed by one line per record; lines are joined with "\n" and there is
// no trailing newline. An empty set renders as "".
//
// This is a minimal dialect: a text or date value containing a comma is
// wrapped in double quotes, but embedded quotes and newlines are written
// as-is. Such values do not round-trip through a strict RFC 4180 reader.
func ToCSV(records []record.Record) string {
	fields := header(records)
	if fields == nil {
		return ""
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(fields, ","))

	cells := make([]string, len(fields))
	for _, r := range records {
		for i, f := range fields {
			cells[i] = csvCell(r, f)
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}

// csvCell renders one field, quoting text and dates that contain a comma
func csvCell(r record.Record, field string) string {
	v, ok := r.Get(field)
	if !ok {
		return ""
	}
	s := v.String()
	textual := v.Kind() == record.KindText || v.Kind() == record.KindDate
	if textual && strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}
