package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bundle-planner/internal/plan"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
	formatCBOR = "cbor"
)

type resolveOptions struct {
	config configOptions
	format string
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	opts := resolveOptions{format: formatYAML}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a build configuration and print the build plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, &opts)
		},
	}

	opts.config.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: yaml, json or cbor")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootOptions, opts *resolveOptions) error {
	logger := root.logger

	cfg, err := opts.config.load(logger)
	if err != nil {
		return err
	}

	p, err := plan.Resolve(cfg)
	if err != nil {
		return err
	}

	fingerprint, err := p.Fingerprint()
	if err != nil {
		return err
	}

	var data []byte

	switch opts.format {
	case formatYAML:
		data, err = plan.ExportYAML(p)
	case formatJSON:
		data, err = plan.ExportJSON(p)
	case formatCBOR:
		data, err = plan.ExportCBOR(p)
	default:
		return fmt.Errorf("invalid --format %q: want %s, %s or %s", opts.format, formatYAML, formatJSON, formatCBOR)
	}

	if err != nil {
		return err
	}

	logger.Info("plan resolved",
		"mode", p.Mode,
		"rules", len(p.Rules),
		"plugins", len(p.Plugins),
		"fingerprint", fingerprint,
	)

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
