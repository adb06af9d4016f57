// Package output provides formatters for writing record sets.
//
// This package defines the Formatter interface and provides implementations
// for CSV, JSON Lines and terminal tables. All formatters take the columns
// from the first record, in its field order.
//
// # Supported Formats
//
//   - CSV: minimal comma-separated dialect with a header row (see ToCSV)
//   - JSON Lines: One JSON object per line (suitable for streaming)
//   - Table: aligned, bordered text table for terminals
//
// # Basic Usage
//
// Selecting a formatter by name:
//
//	formatter, err := output.NewFormatter("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(records); err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// ToCSV returns the CSV text directly:
//
//	text := output.ToCSV(records)
//
// # CSV Dialect
//
// The CSV output is deliberately minimal. Text containing a comma is wrapped
// in double quotes, but quotes and newlines inside values are not escaped.
// Data containing those characters should be exported as JSON Lines.
//
// # Type Handling
//
// Values are written using their canonical text form: integers in base 10,
// decimals without exponent below 1e21, booleans as true/false and dates as
// stored. The JSON formatter keeps numbers and booleans as JSON types.
package output
