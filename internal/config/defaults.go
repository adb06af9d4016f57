package config

import "github.com/vegasq/tabview/view"

// Default values for configuration fields.
const (
	DefaultSortField   = "name"
	DefaultDirection   = "asc"
	DefaultRowsPerPage = 10
	DefaultMemoSize    = view.DefaultMemoSize

	DefaultOutputFormat = "table"

	DefaultLogLevel = "warn"
)

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every unset field with its default value
func ApplyDefaults(cfg *Config) {
	if cfg.View.SortField == "" {
		cfg.View.SortField = DefaultSortField
	}
	if cfg.View.Direction == "" {
		cfg.View.Direction = DefaultDirection
	}
	if cfg.View.RowsPerPage == 0 {
		cfg.View.RowsPerPage = DefaultRowsPerPage
	}
	if cfg.View.MemoSize == 0 {
		cfg.View.MemoSize = DefaultMemoSize
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
}
