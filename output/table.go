package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tabview/record"
)

// TableFormatter outputs records as an aligned text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes records as a table with the first record's fields as
// columns. Nothing is written for an empty set.
func (t *TableFormatter) Format(records []record.Record) error {
	fields := header(records)
	if len(fields) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(fields)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, r := range records {
		row := make([]string, len(fields))
		for i, f := range fields {
			row[i] = cell(r, f)
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
