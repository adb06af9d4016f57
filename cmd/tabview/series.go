package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/record"
	"github.com/vegasq/tabview/view"
)

// NewSeriesCommand creates the series command: (label, value) points from
// the first records of the filtered, sorted set.
func NewSeriesCommand(opts *RootOptions) *cobra.Command {
	var flags pipelineFlags
	var label, value string
	var limit int

	cmd := &cobra.Command{
		Use:     "series <file>",
		Short:   "Extract chart points from the filtered and sorted records",
		Example: `  tabview series users.parquet --label name --value sales --limit 10 --sort sales --dir desc`,
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

			_, _, ordered := view.Order(ds.Records, cfg)
			points := view.Series(ordered, label, value, limit)
			opts.logger.Debug("extracted series", "label", label, "value", value, "points", len(points))

			rows := make([]record.Record, len(points))
			for i, p := range points {
				rows[i] = record.New(
					record.F("label", record.Text(p.Label)),
					record.F("value", record.Float(p.Value)),
				)
			}
			return opts.print(cmd, rows)
		},
	}

	flags.bind(cmd)
	flags.bindSort(cmd)
	cmd.Flags().StringVar(&label, "label", "name", "field used as point label")
	cmd.Flags().StringVar(&value, "value", "sales", "numeric field used as point value")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of points (0 for all)")

	return cmd
}
