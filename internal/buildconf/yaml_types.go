package buildconf

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"bundle-planner/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// --- LoaderSpec / LoaderList YAML methods ---

// UnmarshalYAML accepts a bare loader name or a {loader, options} mapping.
func (l *LoaderSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*l = LoaderSpec{Loader: name}

		return nil

	case yaml.MappingNode:
		type rawLoader LoaderSpec

		var raw rawLoader
		if err := node.Decode(&raw); err != nil {
			return err
		}

		*l = LoaderSpec(raw)

		return nil

	default:
		return fmt.Errorf("line %d: expected loader name or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML writes a loader without options as its bare name.
func (l LoaderSpec) MarshalYAML() (any, error) {
	if len(l.Options) == 0 {
		return l.Loader, nil
	}

	type rawLoader LoaderSpec

	return rawLoader(l), nil
}

// UnmarshalYAML accepts a single loader (name or mapping) or a sequence.
func (l *LoaderList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode, yaml.MappingNode:
		var one LoaderSpec
		if err := node.Decode(&one); err != nil {
			return err
		}

		*l = LoaderList{one}

		return nil

	case yaml.SequenceNode:
		var many []LoaderSpec
		if err := node.Decode(&many); err != nil {
			return err
		}

		*l = many

		return nil

	default:
		return fmt.Errorf("line %d: expected loader or list of loaders, got %v", node.Line, kindName(node.Kind))
	}
}

// --- PluginSpec YAML methods ---

// UnmarshalYAML accepts a bare plugin name or a {name, options} mapping.
func (p *PluginSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*p = PluginSpec{Name: name}

		return nil

	case yaml.MappingNode:
		type rawPlugin PluginSpec

		var raw rawPlugin
		if err := node.Decode(&raw); err != nil {
			return err
		}

		*p = PluginSpec(raw)

		return nil

	default:
		return fmt.Errorf("line %d: expected plugin name or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
