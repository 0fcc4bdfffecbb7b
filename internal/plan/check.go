package plan

import (
	"fmt"
	"regexp"
	"slices"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/diagnostic"
)

// devtoolRe matches the source-map policies webpack 5 accepts.
var devtoolRe = regexp.MustCompile(`^(inline-|hidden-|eval-)?(nosources-)?(cheap-(module-)?)?source-map$`)

// Check validates cfg without stopping at the first problem. Errors carry
// the ConfigError reason as their code; a config with no error diagnostics
// resolves successfully.
func (r *Resolver) Check(cfg *buildconf.BuildConfig) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError(diagnostic.ReasonEmptyEntry.String(), "build config is nil", "", "entry")
		return res
	}

	res.AddConfigError("entry", checkEntry(cfg.Entry))

	ctx, errs := resolveContext(cfg.Context)
	addAll(res, "context", errs)

	_, errs = resolveOutput(ctx, cfg.Output)
	addAll(res, "output", errs)

	_, errs = resolveAliases(ctx, cfg.Resolve.Alias)
	addAll(res, "resolve.alias", errs)

	reg, err := r.registry.Extend(cfg.Definitions)
	if err != nil {
		res.AddConfigError("definitions", err)
		reg = r.registry
	}

	_, errs = resolveRules(ctx, reg, cfg.Module.Rules)
	addAll(res, "module.rules", errs)
	checkRules(res, cfg.Module.Rules)

	_, errs = resolvePlugins(ctx, reg, cfg.Plugins)
	addAll(res, "plugins", errs)

	eff, errs := resolveEffective(cfg)
	addAll(res, "mode", errs)

	if len(errs) == 0 {
		checkEffective(res, eff)
	}

	return res
}

// Check validates cfg against the built-in loader and plugin kinds.
func Check(cfg *buildconf.BuildConfig) *diagnostic.Diagnostics {
	return defaultResolver.Check(cfg)
}

func addAll(res *diagnostic.Diagnostics, scope string, errs []error) {
	for _, err := range errs {
		res.AddConfigError(scope, err)
	}
}

func checkRules(res *diagnostic.Diagnostics, rules []buildconf.TransformRule) {
	for i := range rules {
		field := fmt.Sprintf("module.rules[%d]", i)

		if specs, ok := rules[i].LoaderSpecs(); ok && len(specs) == 0 {
			res.AddWarning("empty-rule", "rule has no loaders; matching files are not transformed", "module.rules", field)
		}

		for j := range i {
			if sameConditions(&rules[j], &rules[i]) {
				res.AddWarning("shadowed-rule",
					fmt.Sprintf("rule never applies: module.rules[%d] has the same conditions and is matched first", j),
					"module.rules", field)

				break
			}
		}
	}
}

func sameConditions(a, b *buildconf.TransformRule) bool {
	return slices.Equal(a.Test, b.Test) &&
		slices.Equal(a.Exclude, b.Exclude) &&
		slices.Equal(a.Include, b.Include)
}

func checkEffective(res *diagnostic.Diagnostics, eff effective) {
	if eff.defaultedMode {
		res.AddInfo("default", fmt.Sprintf("mode not set, using %q", eff.mode), "", "mode")
	}

	if eff.defaultedDevtool {
		res.AddInfo("default", fmt.Sprintf("devtool not set, using %q for %s", eff.devtool, eff.mode), "", "devtool")
	} else if eff.devtool != "" && eff.devtool != "eval" && !devtoolRe.MatchString(eff.devtool) {
		res.AddWarning("unknown-devtool",
			fmt.Sprintf("devtool %q does not match a known source-map policy; it is passed through as is", eff.devtool),
			"", "devtool")
	}

	if eff.defaultedCache {
		res.AddInfo("default", fmt.Sprintf("cache not set, using %t for %s", eff.cache, eff.mode), "", "cache")
	}
}
