package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration and applies environment
// variable overrides. Environment variables follow the naming convention
// TABVIEW_SECTION_FIELD (e.g. TABVIEW_VIEW_ROWS_PER_PAGE) and take
// precedence over the file.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies TABVIEW_* environment variables
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("TABVIEW_VIEW_QUERY"); val != "" {
		cfg.View.Query = val
	}
	if val := os.Getenv("TABVIEW_VIEW_SORT_FIELD"); val != "" {
		cfg.View.SortField = val
	}
	if val := os.Getenv("TABVIEW_VIEW_DIRECTION"); val != "" {
		cfg.View.Direction = val
	}
	if val := os.Getenv("TABVIEW_VIEW_ROWS_PER_PAGE"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("TABVIEW_VIEW_ROWS_PER_PAGE: %w", err)
		}
		cfg.View.RowsPerPage = i
	}
	if val := os.Getenv("TABVIEW_VIEW_MEMO_SIZE"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("TABVIEW_VIEW_MEMO_SIZE: %w", err)
		}
		cfg.View.MemoSize = i
	}
	if val := os.Getenv("TABVIEW_OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := os.Getenv("TABVIEW_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("TABVIEW_LOGGING_SEQ_URL"); val != "" {
		cfg.Logging.SeqURL = val
	}
	return nil
}
