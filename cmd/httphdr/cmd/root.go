// Package cmd implements the httphdr command tree.
package cmd

import (
	"context"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ghettovoice/httphdr/internal/log"
)

type loggerKey struct{}

// NewRootCmd builds a fresh httphdr command tree.
func NewRootCmd() *cobra.Command {
	var (
		logFormat string
		logLevel  string
	)

	rootCmd := &cobra.Command{
		Use:   "httphdr",
		Short: "Decodes and renders HTTP field values",
		Long: `httphdr reads HTTP field lines and decodes them the way a lenient recipient would.

Input is taken from the positional arguments, each one being a single field line value,
or from --file otherwise. When --header is set the input is a header block of
"Name: value" lines and only the lines of that field are used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return errtrace.Wrap(err)
			}
			logger, err := log.New(log.Format(logFormat), cmd.ErrOrStderr(), lvl)
			if err != nil {
				return errtrace.Wrap(err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logFormat, "log", string(log.FormatConsole), "log format: console, dev or none")
	flags.StringVar(&logLevel, "log-level", "warn", "minimal log level")

	in := &inputOptions{}
	in.register(rootCmd)

	rootCmd.AddCommand(
		newDateCmd(in),
		newListCmd(in),
		newOneCmd(in),
	)
	return rootCmd
}

// Execute runs the httphdr command tree with the process arguments.
// A failure is logged with its return trace at debug level.
func Execute() error {
	cmd, err := NewRootCmd().ExecuteContextC(context.Background())
	if err != nil {
		logger(cmd).Debug("command failed", "error", err, "trace", errtrace.FormatString(err))
	}
	return errtrace.Wrap(err)
}

func logger(cmd *cobra.Command) *slog.Logger {
	if l, ok := cmd.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return log.Noop
}
