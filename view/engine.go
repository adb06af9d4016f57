package view

import (
	"fmt"

	"github.com/vegasq/tabview/query"
	"github.com/vegasq/tabview/record"
)

// View is the result of running the pipeline for one configuration
type View struct {
	Config     Config
	Terms      query.Terms
	Filtered   []record.Record // matching records, input order
	Ordered    []record.Record // Filtered sorted by the configured field
	Rows       []record.Record // current page of Ordered
	TotalPages int
}

// Total returns the number of matching records
func (v *View) Total() int {
	return len(v.Filtered)
}

// Summary describes the visible page, e.g. "Showing 10 of 42 entries"
func (v *View) Summary() string {
	return fmt.Sprintf("Showing %d of %d entries", len(v.Rows), len(v.Filtered))
}

// Order runs parse → filter → sort for a configuration
func Order(records []record.Record, cfg Config) (query.Terms, []record.Record, []record.Record) {
	terms := query.Parse(cfg.Query)
	filtered := query.ApplyFilter(records, terms)
	ordered := Sort(filtered, cfg.SortField, cfg.Direction)
	return terms, filtered, ordered
}

// Build validates cfg and runs the whole pipeline: parse, filter, sort and
// paginate. The records are not modified.
func Build(records []record.Record, cfg Config) (*View, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	terms, filtered, ordered := Order(records, cfg)
	rows, totalPages := Paginate(ordered, cfg.Page, cfg.RowsPerPage)

	return &View{
		Config:     cfg,
		Terms:      terms,
		Filtered:   filtered,
		Ordered:    ordered,
		Rows:       rows,
		TotalPages: totalPages,
	}, nil
}
