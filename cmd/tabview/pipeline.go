package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/query"
	"github.com/vegasq/tabview/view"
)

// pipelineFlags are the view state flags shared by the data commands.
// Flags left unset keep the configured values.
type pipelineFlags struct {
	query     string
	sortField string
	direction string
	rows      int
	page      int
	idField   string
}

func (p *pipelineFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.query, "query", "q", "", `filter query, e.g. "region:north sales>5000"`)
	cmd.Flags().StringVar(&p.idField, "id", "", "identifier field that must be present and unique")
}

func (p *pipelineFlags) bindSort(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&p.sortField, "sort", "s", "", "field to sort by")
	cmd.Flags().StringVarP(&p.direction, "dir", "d", "", "sort direction (asc|desc)")
}

func (p *pipelineFlags) bindPaging(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&p.rows, "rows", "n", 0, "rows per page")
	cmd.Flags().IntVarP(&p.page, "page", "p", 1, "page number")
}

// resolve merges the flags that were set over the configured view state.
// Flags a command does not bind are never reported as changed.
func (p *pipelineFlags) resolve(cmd *cobra.Command, base view.Config) (view.Config, error) {
	cfg := base
	flags := cmd.Flags()

	if flags.Changed("query") {
		cfg = cfg.WithQuery(p.query)
	}
	if flags.Changed("sort") {
		cfg.SortField = p.sortField
	}
	if flags.Changed("dir") {
		dir, err := view.ParseDirection(p.direction)
		if err != nil {
			return view.Config{}, err
		}
		cfg.Direction = dir
	}
	if flags.Changed("rows") {
		if p.rows <= 0 {
			return view.Config{}, fmt.Errorf("%w: got %d", view.ErrInvalidRowsPerPage, p.rows)
		}
		cfg = cfg.WithRowsPerPage(p.rows)
	}
	if flags.Changed("page") {
		cfg.Page = p.page
	}

	// untrusted query text is checked against the input limits up front
	if _, err := query.ParseStrict(cfg.Query); err != nil {
		return view.Config{}, err
	}

	return cfg, cfg.Validate()
}
