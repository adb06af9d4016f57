package query

import (
	"strings"
	"unicode"
)

// operatorOrder is the fixed order in which operators are looked for in a
// token. The first one present wins regardless of its position, so ':'
// takes precedence over a '>' or '<' appearing earlier in the token.
var operatorOrder = [...]TermKind{TermEqual, TermGreater, TermLess}

// Tokenize splits a query into whitespace-delimited tokens
func Tokenize(input string) []string {
	return strings.FieldsFunc(input, unicode.IsSpace)
}

// classify turns a single token into a term
func classify(token string) Term {
	for _, kind := range operatorOrder {
		idx := strings.IndexByte(token, kind.Operator())
		if idx < 0 {
			continue
		}
		return Term{
			Kind:    kind,
			Field:   token[:idx],
			Operand: token[idx+1:],
		}
	}
	return Term{Kind: TermFreeText, Operand: token}
}
