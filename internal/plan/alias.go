package plan

import (
	"maps"
	"slices"
	"strings"

	"bundle-planner/internal/diagnostic"
)

func resolveAliases(ctx string, table map[string]string) ([]ResolvedAlias, []error) {
	if len(table) == 0 {
		return nil, nil
	}

	keys := slices.Sorted(maps.Keys(table))
	entries := make([]ResolvedAlias, 0, len(keys))

	var errs []error

	for _, key := range keys {
		name := strings.TrimSuffix(key, "$")
		if strings.TrimSpace(name) == "" {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidValue, "resolve.alias",
				"alias key %q is empty", key))

			continue
		}

		entries = append(entries, ResolvedAlias{
			Name:   name,
			Target: table[key],
			Exact:  strings.HasSuffix(key, "$"),
		})
	}

	resolved := make([]ResolvedAlias, 0, len(entries))

	for _, e := range entries {
		field := "resolve.alias." + aliasKey(e)

		switch {
		case strings.TrimSpace(e.Target) == "":
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "alias target is empty"))
			continue
		case strings.ContainsRune(e.Target, 0):
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPath, field, "alias target contains a NUL byte"))
			continue
		}

		// Aliases are applied once; a target that another alias would
		// rewrite again forms a chain.
		if other, ok := matchAlias(entries, e.Target); ok {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonCyclicAlias, field,
				"alias target %q is itself an alias (%q)", e.Target, aliasKey(other)))

			continue
		}

		// Without a context a relative target keeps its "./" so it is not
		// mistaken for a module name.
		if ctx != "" && isRelativeRequest(e.Target) {
			e.Target = joinContext(ctx, e.Target)
		}

		resolved = append(resolved, e)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return resolved, nil
}

func aliasKey(a ResolvedAlias) string {
	if a.Exact {
		return a.Name + "$"
	}

	return a.Name
}

func isRelativeRequest(r string) bool {
	return r == "." || r == ".." || strings.HasPrefix(r, "./") || strings.HasPrefix(r, "../")
}

// matchAlias returns the alias applying to request, preferring the longest
// name so the result does not depend on table order.
func matchAlias(entries []ResolvedAlias, request string) (ResolvedAlias, bool) {
	var (
		best  ResolvedAlias
		found bool
	)

	for _, e := range entries {
		if !aliasApplies(e, request) {
			continue
		}

		if !found || len(e.Name) > len(best.Name) || (len(e.Name) == len(best.Name) && e.Exact) {
			best = e
			found = true
		}
	}

	return best, found
}

func aliasApplies(e ResolvedAlias, request string) bool {
	if request == e.Name {
		return true
	}

	return !e.Exact && strings.HasPrefix(request, e.Name+"/")
}

// ResolveRequest applies the alias table to a module request once.
// It returns the rewritten request and true when an alias applied.
func (p *BuildPlan) ResolveRequest(request string) (string, bool) {
	a, ok := matchAlias(p.Aliases, request)
	if !ok {
		return request, false
	}

	return a.Target + strings.TrimPrefix(request, a.Name), true
}
