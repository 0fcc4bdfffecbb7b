package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bundle-planner/internal/plan"
)

type checkOptions struct {
	config   configOptions
	warnings bool
	infos    bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := checkOptions{warnings: true}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report every problem in a build configuration",
		Long: `check runs all validations without stopping at the first error and
prints errors, warnings and (with --infos) the defaults that were applied.
It exits non-zero when the configuration would not resolve.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, &opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().BoolVar(&opts.warnings, "warnings", opts.warnings, "print warnings")
	cmd.Flags().BoolVar(&opts.infos, "infos", opts.infos, "print informational diagnostics")

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, opts *checkOptions) error {
	cfg, err := opts.config.load(root.logger)
	if err != nil {
		return err
	}

	res := plan.Check(cfg)
	out := cmd.OutOrStdout()

	for _, d := range res.Errors {
		if _, err := fmt.Fprintf(out, "%s: %s\n", d.Severity, d); err != nil {
			return err
		}
	}

	if opts.warnings {
		for _, d := range res.Warnings {
			if _, err := fmt.Fprintf(out, "%s: %s\n", d.Severity, d); err != nil {
				return err
			}
		}
	}

	if opts.infos {
		for _, d := range res.Infos {
			if _, err := fmt.Fprintf(out, "%s: %s\n", d.Severity, d); err != nil {
				return err
			}
		}
	}

	root.logger.Info("check finished",
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
		"infos", len(res.Infos),
	)

	if res.HasErrors() {
		return fmt.Errorf("configuration has %d error(s)", len(res.Errors))
	}

	return nil
}
