// Package query implements the filter mini-language and its evaluator.
//
// A query is a whitespace-separated list of terms. Every term must match for
// a record to pass (there is no OR, negation or grouping):
//
//   - field:text   the field's text contains text (case-insensitive)
//   - field>num    the field parses as a number greater than num
//   - field<num    the field parses as a number less than num
//   - text         any field's text contains text (case-insensitive)
//
// Each token is classified by looking for ':' first, then '>', then '<'.
// The first operator found splits the token at its first occurrence, so
// "note:a>b" is a containment test on "note" for "a>b".
//
// # Basic Usage
//
//	terms := query.Parse("region:North sales>5000")
//	filtered := query.ApplyFilter(records, terms)
//
// Parsing never fails. Malformed terms degrade to terms that match nothing:
// an unknown field, an empty operand or a non-numeric comparison all
// evaluate to false rather than returning an error. An empty query parses
// to an empty term list which matches every record.
//
// # Untrusted Input
//
// ParseStrict applies size limits before parsing and is meant for query
// strings arriving from outside the process:
//
//	terms, err := query.ParseStrict(userInput)
//	if errors.Is(err, query.ErrQueryTooLong) {
//	    ...
//	}
package query
