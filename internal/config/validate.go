package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/vegasq/tabview/internal/logging"
	"github.com/vegasq/tabview/output"
	"github.com/vegasq/tabview/view"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g. "view.direction").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every field error found in a configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the whole configuration and returns a ValidationError
// listing every problem, or nil.
func Validate(cfg *Config) error {
	var errs []FieldError

	if _, err := view.ParseDirection(cfg.View.Direction); err != nil {
		errs = append(errs, FieldError{"view.direction", err.Error()})
	}
	if cfg.View.RowsPerPage <= 0 {
		errs = append(errs, FieldError{"view.rows_per_page", "must be positive"})
	}
	if cfg.View.MemoSize <= 0 {
		errs = append(errs, FieldError{"view.memo_size", "must be positive"})
	}

	if !slices.Contains(output.Formats, cfg.Output.Format) {
		errs = append(errs, FieldError{"output.format", fmt.Sprintf("must be one of %s", strings.Join(output.Formats, ", "))})
	}

	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		errs = append(errs, FieldError{"logging.level", err.Error()})
	}
	if cfg.Logging.SeqURL != "" {
		if u, err := url.Parse(cfg.Logging.SeqURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, FieldError{"logging.seq_url", "must be an absolute URL"})
		}
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
