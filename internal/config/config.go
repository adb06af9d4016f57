// Package config loads tabview's YAML configuration.
//
// Values are resolved in order: built-in defaults, the YAML file, then
// TABVIEW_* environment variables. Command-line flags are applied last by
// the CLI itself.
package config

import "github.com/vegasq/tabview/view"

// Config is the root configuration
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ViewConfig holds the initial view state
type ViewConfig struct {
	Query       string `yaml:"query"`
	SortField   string `yaml:"sort_field"`
	Direction   string `yaml:"direction"`
	RowsPerPage int    `yaml:"rows_per_page"`
	// MemoSize is the number of cached orderings and pages
	MemoSize int `yaml:"memo_size"`
}

// OutputConfig selects how records are printed
type OutputConfig struct {
	Format string `yaml:"format"`
}

// LoggingConfig configures the logger
type LoggingConfig struct {
	Level  string `yaml:"level"`
	SeqURL string `yaml:"seq_url"`
}

// ViewConfig converts the configured view state into a pipeline
// configuration on page 1. The configuration must already be valid.
func (c *Config) ViewConfig() view.Config {
	dir, _ := view.ParseDirection(c.View.Direction)
	return view.Config{
		Query:       c.View.Query,
		SortField:   c.View.SortField,
		Direction:   dir,
		Page:        1,
		RowsPerPage: c.View.RowsPerPage,
	}
}
