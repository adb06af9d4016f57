package query

// Parse parses a query string into terms.
//
// Parsing never fails: an empty or whitespace-only query yields an empty
// list, and every token becomes exactly one term.
func Parse(query string) Terms {
	tokens := Tokenize(query)
	terms := make(Terms, 0, len(tokens))
	for _, tok := range tokens {
		terms = append(terms, classify(tok))
	}
	return terms
}

// ParseStrict parses a query after checking it against the input limits.
//
// It is intended for query strings from untrusted sources; the resulting
// terms are identical to Parse for any query within limits.
func ParseStrict(query string) (Terms, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	tokens := Tokenize(query)
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}

	terms := make(Terms, 0, len(tokens))
	for _, tok := range tokens {
		term := classify(tok)
		if err := ValidateFieldName(term.Field); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, nil
}
