package plan

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"bundle-planner/internal/common"
	"bundle-planner/internal/diagnostic"
	"bundle-planner/internal/registry"
	"bundle-planner/internal/suggest"
)

// validateOptions checks every key of opts against the kind's recognized
// options and returns a deep, string-keyed copy with path-typed values joined
// onto ctx.
// Keys are visited in sorted order so the first error is stable.
func validateOptions(ctx string, kind *registry.Kind, opts map[string]any, field string) (map[string]any, []error) {
	if len(opts) == 0 {
		return nil, nil
	}

	out := make(map[string]any, len(opts))

	var errs []error

	for _, key := range slices.Sorted(maps.Keys(opts)) {
		keyField := field + "." + key

		spec, ok := kind.Option(key)
		if !ok {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonUnknownOption, keyField,
				"option %q is not recognized by %s%s", key, kind.Name, knownOptionsHint(kind, key)))

			continue
		}

		value, err := common.NormalizeValue(opts[key])
		if err != nil {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidValue, keyField,
				"option %q of %s has an unusable mapping key: %v", key, kind.Name, err))

			continue
		}

		if !spec.Type.Accepts(value) {
			errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidValue, keyField,
				"option %q of %s must be %s, got %s", key, kind.Name, spec.Type, describeValue(value)))

			continue
		}

		if s, isStr := value.(string); isStr && spec.Type.HasPath() {
			if strings.TrimSpace(s) == "" {
				errs = append(errs, diagnostic.Errorf(diagnostic.ReasonInvalidPath, keyField,
					"option %q of %s is an empty path", key, kind.Name))

				continue
			}

			value = joinContext(ctx, s)
		}

		out[key] = value
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return out, nil
}

// knownOptionsHint suggests close option names, falling back to the full list.
func knownOptionsHint(kind *registry.Kind, key string) string {
	names := kind.OptionNames()
	if len(names) == 0 {
		return " (it takes no options)"
	}

	if hint := suggest.Hint(key, names); hint != "" {
		return hint
	}

	return " (known: " + strings.Join(names, ", ") + ")"
}

func kindNames(kinds []*registry.Kind) []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Name)
	}

	return names
}

func describeValue(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
