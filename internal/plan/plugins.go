package plan

import (
	"fmt"
	"strings"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/diagnostic"
	"bundle-planner/internal/registry"
	"bundle-planner/internal/suggest"
)

func resolvePlugins(ctx string, reg *registry.Registry, plugins []buildconf.PluginSpec) ([]ResolvedPlugin, []error) {
	if len(plugins) == 0 {
		return nil, nil
	}

	out := make([]ResolvedPlugin, 0, len(plugins))

	var errs []error

	for i, spec := range plugins {
		field := fmt.Sprintf("plugins[%d]", i)
		if strings.TrimSpace(spec.Name) == "" {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidValue, field, "plugin name is empty"))
			continue
		}

		kind, ok := reg.Plugin(spec.Name)
		if !ok {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonUnknownKind, field,
				"unknown plugin %q%s", spec.Name, suggest.Hint(spec.Name, kindNames(reg.Plugins()))))
			continue
		}

		opts, optErrs := validateOptions(ctx, kind, spec.Options, field+".options")
		if len(optErrs) > 0 {
			errs = append(errs, optErrs...)
			continue
		}

		out = append(out, ResolvedPlugin{
			Name:    kind.Name,
			Options: opts,
			Hooks:   hooksInFiringOrder(kind),
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}

// hooksInFiringOrder returns the kind's hooks sorted by when they fire.
// Hooks the registry does not know keep their declared order at the end.
func hooksInFiringOrder(kind *registry.Kind) []string {
	if len(kind.Hooks) == 0 {
		return nil
	}

	declared := make(map[string]bool, len(kind.Hooks))
	for _, h := range kind.Hooks {
		declared[h] = true
	}

	out := make([]string, 0, len(kind.Hooks))

	for _, h := range registry.Hooks {
		if declared[h] {
			out = append(out, h)
			delete(declared, h)
		}
	}

	for _, h := range kind.Hooks {
		if declared[h] {
			out = append(out, h)
			delete(declared, h)
		}
	}

	return out
}

// PluginsFor returns the plugins that tap hook, in declaration order.
func (p *BuildPlan) PluginsFor(hook string) []ResolvedPlugin {
	var out []ResolvedPlugin

	for i := range p.Plugins {
		if p.Plugins[i].Taps(hook) {
			out = append(out, p.Plugins[i])
		}
	}

	return out
}
