// Package cli implements the qry command: ad-hoc queries over YAML or JSON
// lists of objects, built on the query package.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/amp-labs/amp-query/logger"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{formatText, formatJSON} //nolint:gochecknoglobals

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}

// NewRootCommand creates the qry command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	queryOpts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "qry [flags] FILE|-",
		Short: "Query a YAML or JSON list of objects",
		Long: `Filter, sort, deduplicate and project a YAML or JSON document holding a
list of objects. Use - to read the document from standard input.

  qry --where 'age>=18' --order-by team --order-by=-age --select name,age people.yaml`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return commandError(fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			return configureLogging(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, opts, queryOpts, args[0])
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log query steps to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", formatText, "output format (json|text)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return commandError(err)
	})

	queryOpts.register(cmd)

	cmd.AddCommand(newFieldsCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))

	return cmd
}

// exactArgs is cobra.ExactArgs with a command-error exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return commandError(err)
		}

		return nil
	}
}

// configureLogging sends logs to the command's stderr. LOG_LEVEL and
// friends are honored; --verbose lowers the level to debug.
func configureLogging(cmd *cobra.Command, opts *RootOptions) error {
	logOpts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
	if opts.Verbose {
		logOpts = append(logOpts, logger.WithMinLevel(slog.LevelDebug))
	}

	if _, err := logger.ConfigureLogging("qry", logOpts...); err != nil {
		return commandError(err)
	}

	return nil
}

// Execute runs qry with the given arguments and streams and returns the
// process exit code. Failures are reported in the selected format.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &RootOptions{}

	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	if opts.Format != formatJSON {
		opts.Format = formatText
	}

	if werr := opts.formatter(cmd).Error(err); werr != nil {
		logger.Get(ctx).Error("writing error output", "error", werr)
	}

	return GetExitCode(err)
}
