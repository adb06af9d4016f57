package main

import (
	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/reader"
	"github.com/vegasq/tabview/record"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file.parquet>",
		Short: "Describe the columns of a Parquet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := reader.ExtractSchemaInfo(args[0])
			if err != nil {
				return err
			}
			opts.logger.Debug("read schema", "path", args[0], "columns", len(infos))

			rows := make([]record.Record, len(infos))
			for i, info := range infos {
				rows[i] = info.Record()
			}
			return opts.print(cmd, rows)
		},
	}
}
