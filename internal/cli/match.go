package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bundle-planner/internal/plan"
)

type matchOptions struct {
	config   configOptions
	requests bool
}

func newMatchCmd(root *rootOptions) *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "match [flags] <path>...",
		Short: "Show which rule and loaders apply to source files",
		Long: `match resolves the configuration and prints, for each path, the index of
the first matching rule and its loaders in execution order. With --requests
the arguments are module requests and the alias table is applied instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, root, &opts, args)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().BoolVar(&opts.requests, "requests", false, "treat arguments as module requests and apply resolve.alias")

	return cmd
}

func runMatch(cmd *cobra.Command, root *rootOptions, opts *matchOptions, args []string) error {
	cfg, err := opts.config.load(root.logger)
	if err != nil {
		return err
	}

	p, err := plan.Resolve(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, arg := range args {
		var line string

		if opts.requests {
			line = describeRequest(p, arg)
		} else {
			line = describeMatch(p, arg)
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}

func describeMatch(p *plan.BuildPlan, file string) string {
	rule, ok := p.Match(file)
	if !ok {
		return file + ": no rule"
	}

	loaders := rule.LoaderNames()
	if len(loaders) == 0 {
		return fmt.Sprintf("%s: rule %d: no loaders", file, rule.Index)
	}

	return fmt.Sprintf("%s: rule %d: %s", file, rule.Index, strings.Join(loaders, " -> "))
}

func describeRequest(p *plan.BuildPlan, request string) string {
	target, ok := p.ResolveRequest(request)
	if !ok {
		return request + ": no alias"
	}

	return request + " => " + target
}
