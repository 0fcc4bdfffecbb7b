package buildconf

import (
	"fmt"
	"maps"
	"slices"

	"bundle-planner/internal/common"
)

// Merge combines generic configuration documents in order. Mappings merge
// recursively, sequences are concatenated (later entries after earlier ones,
// so rule and plugin order follows file order) and scalars from later
// documents win. A key holding a mapping in one document and a sequence or
// scalar in another is a conflict. Null values never conflict.
//
// Inputs are not modified.
func Merge(docs ...map[string]any) (map[string]any, error) {
	return merge(docs, "")
}

func merge(docs []map[string]any, path string) (map[string]any, error) {
	result := make(map[string]any)

	for _, doc := range docs {
		for _, key := range slices.Sorted(maps.Keys(doc)) { // Sort keys to ensure deterministic merge errors.
			value := common.CloneValue(doc[key])
			keyPath := path + "/" + key

			existing, ok := result[key]
			if !ok || existing == nil || value == nil {
				if value != nil || !ok {
					result[key] = value
				}

				continue
			}

			switch ev := existing.(type) {
			case map[string]any:
				vm, isMap := value.(map[string]any)
				if !isMap {
					return nil, fmt.Errorf("conflict for config path %s: mapping and %s", keyPath, shapeOf(value))
				}

				merged, err := merge([]map[string]any{ev, vm}, keyPath)
				if err != nil {
					return nil, err
				}

				result[key] = merged

			case []any:
				vl, isList := value.([]any)
				if !isList {
					return nil, fmt.Errorf("conflict for config path %s: sequence and %s", keyPath, shapeOf(value))
				}

				result[key] = append(ev, vl...)

			default:
				if s := shapeOf(value); s != "scalar" {
					return nil, fmt.Errorf("conflict for config path %s: scalar and %s", keyPath, s)
				}

				result[key] = value
			}
		}
	}

	return result, nil
}

func shapeOf(v any) string {
	switch v.(type) {
	case map[string]any:
		return "mapping"
	case []any:
		return "sequence"
	default:
		return "scalar"
	}
}
