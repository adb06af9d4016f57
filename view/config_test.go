package view

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"asc", Ascending, false},
		{"ASC", Ascending, false},
		{"desc", Descending, false},
		{" descending ", Descending, false},
		{"up", Ascending, true},
		{"", Ascending, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDirection) {
				t.Errorf("error should wrap ErrInvalidDirection, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg.Page = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("Validate() = %v, want ErrInvalidPage", err)
	}

	cfg = DefaultConfig()
	cfg.RowsPerPage = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidRowsPerPage) {
		t.Errorf("Validate() = %v, want ErrInvalidRowsPerPage", err)
	}
}

func TestConfig_ToggleSort(t *testing.T) {
	cfg := DefaultConfig()

	cfg = cfg.ToggleSort("name")
	if cfg.SortField != "name" || cfg.Direction != Descending {
		t.Errorf("toggling the current field should flip direction, got %+v", cfg)
	}

	cfg = cfg.ToggleSort("sales")
	if cfg.SortField != "sales" || cfg.Direction != Ascending {
		t.Errorf("a new field should start ascending, got %+v", cfg)
	}
}

func TestConfig_ResetsPage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Page = 4

	if got := cfg.WithQuery("region:North"); got.Page != 1 || got.Query != "region:North" {
		t.Errorf("WithQuery() = %+v", got)
	}
	if got := cfg.WithRowsPerPage(25); got.Page != 1 || got.RowsPerPage != 25 {
		t.Errorf("WithRowsPerPage() = %+v", got)
	}
	if got := cfg.WithRowsPerPage(0); got != cfg {
		t.Errorf("WithRowsPerPage(0) should be ignored, got %+v", got)
	}
	if cfg.Page != 4 {
		t.Errorf("original config modified: %+v", cfg)
	}
}

func TestConfig_Paging(t *testing.T) {
	cfg := DefaultConfig()

	cfg = cfg.PrevPage(3)
	if cfg.Page != 1 {
		t.Errorf("PrevPage on first page = %d, want 1", cfg.Page)
	}

	cfg = cfg.NextPage(3).NextPage(3).NextPage(3)
	if cfg.Page != 3 {
		t.Errorf("NextPage past the end = %d, want 3", cfg.Page)
	}

	cfg = cfg.WithPage(10, 2)
	if cfg.Page != 2 {
		t.Errorf("WithPage(10, 2) = %d, want 2", cfg.Page)
	}
}
