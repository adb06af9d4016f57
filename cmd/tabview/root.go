package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vegasq/tabview/internal/config"
	"github.com/vegasq/tabview/internal/logging"
	"github.com/vegasq/tabview/output"
	"github.com/vegasq/tabview/reader"
	"github.com/vegasq/tabview/record"
)

// RootOptions holds global flags and the state resolved from them.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string

	cfg     *config.Config
	logger  *slog.Logger
	cleanup func()
}

// NewRootCommand creates the root command for the tabview CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "tabview",
		Short:        "Filter, sort, page and export tabular records",
		Long:         "tabview loads records from Parquet or JSON lines files and runs them through a filter, sort, paginate and export pipeline.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.cleanup != nil {
				opts.cleanup()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log pipeline stages")
	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", "", fmt.Sprintf("output format (%s)", strings.Join(output.Formats, "|")))

	cmd.AddCommand(NewViewCommand(opts))
	cmd.AddCommand(NewGroupsCommand(opts))
	cmd.AddCommand(NewSeriesCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setup loads configuration, applies global flag overrides and builds the
// logger.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfigWithEnvOverrides(o.ConfigPath)
	if err != nil {
		return err
	}

	if o.Format != "" {
		cfg.Output.Format = o.Format
	}
	if o.Verbose {
		cfg.Logging.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, cleanup, err := logging.Setup(logging.Options{
		Level:  cfg.Logging.Level,
		SeqURL: cfg.Logging.SeqURL,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	o.cleanup = cleanup
	return nil
}

// load reads a dataset and validates it when an identifier field is given
func (o *RootOptions) load(path, idField string) (record.Dataset, error) {
	ds, err := reader.LoadDataset(path)
	if err != nil {
		return record.Dataset{}, err
	}
	o.logger.Debug("loaded records", "path", path, "count", ds.Len(), "revision", ds.Revision)

	if idField != "" {
		if err := record.Validate(ds.Records, idField); err != nil {
			return record.Dataset{}, err
		}
	}
	return ds, nil
}

// print writes records to the command's output in the configured format
func (o *RootOptions) print(cmd *cobra.Command, records []record.Record) error {
	formatter, err := output.NewFormatter(o.cfg.Output.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := formatter.Format(records); err != nil {
		return err
	}
	// CSV text carries no trailing newline
	if o.cfg.Output.Format == "csv" && len(records) > 0 {
		_, err = fmt.Fprintln(cmd.OutOrStdout())
	}
	return err
}
