package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"bundle-planner/internal/buildconf"
)

// configOptions are the flags shared by every command that reads a build
// configuration.
type configOptions struct {
	files []string
	mode  string
}

func (o *configOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.files, "config", "c", nil,
		"build configuration file (.yaml, .yml, .json, .jsonc); repeat to merge several in order")
	cmd.Flags().StringVar(&o.mode, "mode", "", "override the configured mode (development or production)")
	_ = cmd.MarkFlagRequired("config")
}

// load reads and merges the configured files and applies the mode override.
func (o *configOptions) load(logger *slog.Logger) (*buildconf.BuildConfig, error) {
	if len(o.files) == 0 {
		return nil, errors.New("no configuration file given")
	}

	cfg, err := buildconf.LoadFiles(o.files...)
	if err != nil {
		return nil, err
	}

	if o.mode != "" {
		mode := buildconf.Mode(o.mode)
		if !mode.IsValid() {
			return nil, fmt.Errorf("invalid --mode %q: want %s or %s", o.mode, buildconf.ModeDevelopment, buildconf.ModeProduction)
		}

		cfg.Mode = mode
	}

	logger.Debug("configuration loaded",
		"files", o.files,
		"rules", len(cfg.Module.Rules),
		"plugins", len(cfg.Plugins),
		"aliases", len(cfg.Resolve.Alias),
	)

	return cfg, nil
}
