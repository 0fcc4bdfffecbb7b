package plan

import (
	"path/filepath"
	"strings"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/diagnostic"
	"bundle-planner/internal/registry"
)

// Devtool and cache defaults per mode.
const (
	DefaultDevelopmentDevtool = "eval"
	DefaultProductionDevtool  = ""
)

// Resolver performs the resolution pipeline. It holds no per-build state,
// so one Resolver may serve concurrent Resolve calls.
type Resolver struct {
	registry *registry.Registry
}

// NewResolver creates a Resolver validating loaders and plugins against reg.
// A nil registry selects the built-in kinds.
func NewResolver(reg *registry.Registry) *Resolver {
	if reg == nil {
		reg = registry.Builtin()
	}

	return &Resolver{registry: reg}
}

var defaultResolver = NewResolver(nil)

// Resolve resolves cfg against the built-in loader and plugin kinds.
func Resolve(cfg *buildconf.BuildConfig) (*BuildPlan, error) {
	return defaultResolver.Resolve(cfg)
}

// Resolve runs the full resolution pipeline and returns a BuildPlan, or the
// first *diagnostic.ConfigError encountered. No partial plan is returned.
func (r *Resolver) Resolve(cfg *buildconf.BuildConfig) (*BuildPlan, error) {
	if cfg == nil {
		return nil, diagnostic.Errorf(diagnostic.ReasonEmptyEntry, "entry", "build config is nil")
	}

	// Entry is checked before any other validation.
	if err := checkEntry(cfg.Entry); err != nil {
		return nil, err
	}

	ctx, errs := resolveContext(cfg.Context)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	output, errs := resolveOutput(ctx, cfg.Output)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	aliases, errs := resolveAliases(ctx, cfg.Resolve.Alias)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	reg, err := r.registry.Extend(cfg.Definitions)
	if err != nil {
		return nil, err
	}

	rules, errs := resolveRules(ctx, reg, cfg.Module.Rules)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	plugins, errs := resolvePlugins(ctx, reg, cfg.Plugins)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	eff, errs := resolveEffective(cfg)
	if len(errs) > 0 {
		return nil, errs[0]
	}

	return &BuildPlan{
		Context: ctx,
		Entry:   cfg.Entry,
		Output:  output,
		Aliases: aliases,
		Rules:   rules,
		Plugins: plugins,
		Mode:    eff.mode,
		Devtool: eff.devtool,
		Cache:   eff.cache,
	}, nil
}

func checkEntry(entry string) error {
	if strings.TrimSpace(entry) == "" {
		return diagnostic.Errorf(diagnostic.ReasonEmptyEntry, "entry", "entry path is empty")
	}

	if strings.ContainsRune(entry, 0) {
		return diagnostic.Errorf(diagnostic.ReasonInvalidPath, "entry", "entry path contains a NUL byte")
	}

	return nil
}

func resolveContext(context string) (string, []error) {
	if context == "" {
		return "", nil
	}

	if strings.ContainsRune(context, 0) {
		return "", []error{diagnostic.Errorf(diagnostic.ReasonInvalidPath, "context", "context contains a NUL byte")}
	}

	return filepath.Clean(context), nil
}

// joinContext resolves p against ctx. Absolute paths and an empty context
// only clean p.
func joinContext(ctx, p string) string {
	if ctx == "" || filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(ctx, p)
}

// effective holds the mode-dependent settings.
type effective struct {
	mode    buildconf.Mode
	devtool string
	cache   bool

	// Which values came from defaults, for Check.
	defaultedMode    bool
	defaultedDevtool bool
	defaultedCache   bool
}

func resolveEffective(cfg *buildconf.BuildConfig) (effective, []error) {
	var eff effective

	eff.mode = cfg.Mode
	if eff.mode == "" {
		eff.mode = buildconf.ModeProduction
		eff.defaultedMode = true
	}

	if !eff.mode.IsValid() {
		return effective{}, []error{diagnostic.Errorf(diagnostic.ReasonInvalidValue, "mode",
			"mode %q is not one of %q, %q", cfg.Mode, buildconf.ModeDevelopment, buildconf.ModeProduction)}
	}

	switch {
	case cfg.Devtool == nil:
		eff.defaultedDevtool = true
		if eff.mode == buildconf.ModeDevelopment {
			eff.devtool = DefaultDevelopmentDevtool
		} else {
			eff.devtool = DefaultProductionDevtool
		}
	case *cfg.Devtool == "false":
		eff.devtool = ""
	default:
		eff.devtool = *cfg.Devtool
	}

	if cfg.Cache == nil {
		eff.defaultedCache = true
		eff.cache = eff.mode == buildconf.ModeDevelopment
	} else {
		eff.cache = *cfg.Cache
	}

	return eff, nil
}
