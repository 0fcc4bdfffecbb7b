package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"bundle-planner/internal/registry"
)

type kindsOptions struct {
	files []string
}

func newKindsCmd(root *rootOptions) *cobra.Command {
	var opts kindsOptions

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the recognized loader and plugin kinds",
		Long: `kinds prints every loader and plugin kind with its options. When
configuration files are given their definitions are included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(cmd, root, &opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.files, "config", "c", nil, "include the definitions of these configuration files")

	return cmd
}

func runKinds(cmd *cobra.Command, root *rootOptions, opts *kindsOptions) error {
	reg := registry.Builtin()

	if len(opts.files) > 0 {
		cfgOpts := configOptions{files: opts.files}

		cfg, err := cfgOpts.load(root.logger)
		if err != nil {
			return err
		}

		reg, err = reg.Extend(cfg.Definitions)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()

	if err := printKinds(out, "loaders", reg.Loaders()); err != nil {
		return err
	}

	return printKinds(out, "plugins", reg.Plugins())
}

func printKinds(w io.Writer, title string, kinds []*registry.Kind) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", title)

	for _, k := range kinds {
		b.WriteString("  " + k.Name)

		if len(k.Aliases) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(k.Aliases, ", "))
		}

		b.WriteString("\n")

		if len(k.Hooks) > 0 {
			fmt.Fprintf(&b, "    hooks: %s\n", strings.Join(k.Hooks, ", "))
		}

		if k.AnyOption {
			b.WriteString("    options: any\n")
			continue
		}

		for _, o := range k.Options {
			typ := o.Type
			if typ == "" {
				typ = registry.TypeAny
			}

			fmt.Fprintf(&b, "    %s: %s\n", o.Name, typ)
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}
