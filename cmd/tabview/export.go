package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/output"
	"github.com/vegasq/tabview/view"
)

// NewExportCommand creates the export command: the whole filtered, sorted
// set as CSV.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var flags pipelineFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the filtered and sorted records as CSV",
		Example: `  tabview export users.parquet -q "region:north" -o north.csv
  tabview export users.jsonl > users.csv`,
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

			_, filtered, ordered := view.Order(ds.Records, cfg)
			text := output.ToCSV(ordered)
			opts.logger.Debug("exporting records", "count", len(filtered), "bytes", len(text))

			if outPath == "" {
				if text == "" {
					return nil
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}

			if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			opts.logger.Info("exported records", "path", outPath, "count", len(ordered))
			return nil
		},
	}

	flags.bind(cmd)
	flags.bindSort(cmd)
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "file to write (default stdout)")

	return cmd
}
