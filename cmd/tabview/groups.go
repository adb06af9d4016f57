package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/query"
	"github.com/vegasq/tabview/record"
	"github.com/vegasq/tabview/view"
)

// NewGroupsCommand creates the groups command: record counts per distinct
// value of a field, after filtering.
func NewGroupsCommand(opts *RootOptions) *cobra.Command {
	var flags pipelineFlags
	var field string

	cmd := &cobra.Command{
		Use:     "groups <file>",
		Short:   "Count filtered records per value of a field",
		Example: `  tabview groups users.parquet --field region -q "sales>1000"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd, opts.cfg.ViewConfig())
			if err != nil {
				return err
			}

			ds, err := opts.load(args[0], flags.idField)
			if err != nil {
				return err
			}

			filtered := query.ApplyFilter(ds.Records, query.Parse(cfg.Query))
			categories := view.GroupCount(filtered, field)
			opts.logger.Debug("grouped records", "field", field, "matched", len(filtered), "groups", len(categories))

			rows := make([]record.Record, len(categories))
			for i, c := range categories {
				rows[i] = record.New(
					record.F("name", record.Text(c.Name)),
					record.F("value", record.Int(int64(c.Count))),
				)
			}
			return opts.print(cmd, rows)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&field, "field", "region", "field to group by")

	return cmd
}
