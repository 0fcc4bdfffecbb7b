package common

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// CloneValue deep-copies a decoded configuration value (the shapes produced by
// the YAML and JSON decoders: maps, slices and scalars). Scalars are returned
// as is.
func CloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = CloneValue(t[i])
		}

		return out
	default:
		return v
	}
}

// CloneMap deep-copies an option record. A nil map stays nil.
func CloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}

	return out
}

// NormalizeValue deep-copies v like CloneValue and rewrites mappings whose
// keys are not all strings (YAML decodes `{1: x}` as map[any]any) into
// string-keyed maps, writing each scalar key the way an object literal
// would. A key that is not a scalar, or two keys that collide once written
// as strings, is an error naming the key path below v.
func NormalizeValue(v any) (any, error) {
	return normalize(v, "")
}

func normalize(v any, path string) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			n, err := normalize(t[k], joinKey(path, k))
			if err != nil {
				return nil, err
			}

			out[k] = n
		}

		return out, nil
	case map[any]any:
		keys := make([]string, 0, len(t))
		items := make(map[string]any, len(t))

		for k, item := range t {
			key, err := scalarKey(k)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", pathOrRoot(path), err)
			}

			if _, dup := items[key]; dup {
				return nil, fmt.Errorf("%s: duplicate key %q", pathOrRoot(path), key)
			}

			keys = append(keys, key)
			items[key] = item
		}

		slices.Sort(keys)

		out := make(map[string]any, len(t))
		for _, k := range keys {
			n, err := normalize(items[k], joinKey(path, k))
			if err != nil {
				return nil, err
			}

			out[k] = n
		}

		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			n, err := normalize(t[i], fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}

			out[i] = n
		}

		return out, nil
	default:
		return v, nil
	}
}

func scalarKey(k any) (string, error) {
	switch t := k.(type) {
	case string:
		return t, nil
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("key of type %T is not a scalar", k)
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func pathOrRoot(path string) string {
	if path == "" {
		return "value"
	}

	return path
}
