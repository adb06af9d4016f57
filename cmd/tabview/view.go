package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/view"
)

// NewViewCommand creates the view command: one page of the filtered,
// sorted record set.
func NewViewCommand(opts *RootOptions) *cobra.Command {
	var flags pipelineFlags
	var all bool

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show one page of filtered and sorted records",
		Example: `  tabview view users.parquet
  tabview view users.jsonl -q "region:north sales>5000" --sort sales --dir desc
  tabview view "data/*.parquet" --rows 25 --page 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts.cfg.ViewConfig())
			if err != nil {
				return err
			}

			ds, err := opts.load(args[0], flags.idField)
			if err != nil {
				return err
			}

			memo, err := view.NewMemo(opts.cfg.View.MemoSize)
			if err != nil {
				return err
			}

			v, err := memo.Build(ds, cfg)
			if err != nil {
				return err
			}
			opts.logger.Debug("built view",
				"terms", len(v.Terms),
				"matched", v.Total(),
				"page", cfg.Page,
				"total_pages", v.TotalPages,
			)

			rows := v.Rows
			if all {
				rows = v.Ordered
			}
			if err := opts.print(cmd, rows); err != nil {
				return err
			}

			if opts.cfg.Output.Format == "table" && !all {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (page %d of %d)\n", v.Summary(), cfg.Page, v.TotalPages)
			}
			return nil
		},
	}

	flags.bind(cmd)
	flags.bindSort(cmd)
	flags.bindPaging(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "print every matching record instead of one page")

	return cmd
}
