package query

import "strings"

// TermKind represents the kind of a query term
type TermKind int

const (
	TermFreeText TermKind = iota // bare text, any field
	TermEqual                    // field:text
	TermGreater                  // field>number
	TermLess                     // field<number
)

// String returns a readable name for the kind
func (k TermKind) String() string {
	switch k {
	case TermFreeText:
		return "free-text"
	case TermEqual:
		return "equal"
	case TermGreater:
		return "greater"
	case TermLess:
		return "less"
	default:
		return "unknown"
	}
}

// Operator returns the query-language operator for the kind, or 0 for
// free text.
func (k TermKind) Operator() byte {
	switch k {
	case TermEqual:
		return ':'
	case TermGreater:
		return '>'
	case TermLess:
		return '<'
	default:
		return 0
	}
}

// Term is one parsed unit of a query.
//
// Field is empty for free-text terms. Operand holds the text after the
// operator (the needle or threshold) exactly as written.
type Term struct {
	Kind    TermKind
	Field   string
	Operand string
}

// String renders the term back into query syntax
func (t Term) String() string {
	op := t.Kind.Operator()
	if op == 0 {
		return t.Operand
	}
	return t.Field + string(op) + t.Operand
}

// Terms is an ordered list of terms combined with logical AND
type Terms []Term

// String renders the terms back into a query string
func (ts Terms) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Fields returns the distinct field names referenced by the terms, in order
// of first use.
func (ts Terms) Fields() []string {
	seen := make(map[string]bool)
	fields := make([]string, 0)
	for _, t := range ts {
		if t.Kind == TermFreeText || seen[t.Field] {
			continue
		}
		seen[t.Field] = true
		fields = append(fields, t.Field)
	}
	return fields
}
