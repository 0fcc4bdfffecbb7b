// Package cli implements the bundle-planner command line.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel  string
	logFormat string

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{
		logLevel:  "info",
		logFormat: logFormatAuto,
	}

	cmd := &cobra.Command{
		Use:   "bundle-planner",
		Short: "Resolve bundler build configurations into build plans",
		Long: `bundle-planner loads a declarative bundler configuration (entry, output,
mode, devtool, cache, resolve.alias, module.rules, plugins), validates every
cross-reference and prints the resolved, order-stable build plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
			if err != nil {
				return err
			}

			opts.logger = logger.With("command", cmd.Name())

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", opts.logFormat, "log format: auto, text or json")

	cmd.AddCommand(
		newResolveCmd(opts),
		newCheckCmd(opts),
		newMatchCmd(opts),
		newKindsCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		cmd.PrintErrln("error:", err)
		return 1
	}

	return 0
}
