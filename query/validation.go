package query

import (
	"errors"
	"fmt"
)

// Validation constants to prevent resource exhaustion on untrusted input
const (
	// MaxQueryLength is the maximum allowed query string length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxTerms is the maximum number of terms in a query
	MaxTerms = 1000

	// MaxFieldNameLength is the maximum length for a field name in a term
	MaxFieldNameLength = 256
)

var (
	// ErrQueryTooLong is returned when query exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyTerms is returned when query has more than MaxTerms terms
	ErrTooManyTerms = errors.New("too many terms in query")

	// ErrFieldNameTooLong is returned when a term's field name is too long
	ErrFieldNameTooLong = errors.New("field name too long")
)

// ValidateQuery checks the raw query length
func ValidateQuery(query string) error {
	if len(query) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(query), MaxQueryLength)
	}
	return nil
}

// ValidateTokens checks the token count
func ValidateTokens(tokens []string) error {
	if len(tokens) > MaxTerms {
		return fmt.Errorf("%w: %d terms (max %d)", ErrTooManyTerms, len(tokens), MaxTerms)
	}
	return nil
}

// ValidateFieldName checks a field name's length
func ValidateFieldName(name string) error {
	if len(name) > MaxFieldNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrFieldNameTooLong, len(name), MaxFieldNameLength)
	}
	return nil
}
