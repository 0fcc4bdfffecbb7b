package registry

import (
	"fmt"
	"strings"
)

// ValueType names the accepted shape of an option value. Alternatives are
// separated by "|", e.g. "bool|string".
type ValueType string

const (
	TypeString ValueType = "string"
	TypeBool   ValueType = "bool"
	TypeNumber ValueType = "number"
	TypeList   ValueType = "list"
	TypeMap    ValueType = "map"
	// TypePath is a string that names a file; resolution joins relative
	// values onto the build context.
	TypePath ValueType = "path"
	TypeAny  ValueType = "any"
)

var knownTypes = map[ValueType]struct{}{
	TypeString: {}, TypeBool: {}, TypeNumber: {}, TypeList: {},
	TypeMap: {}, TypePath: {}, TypeAny: {},
}

// Alternatives splits a union type into its members.
func (t ValueType) Alternatives() []ValueType {
	if t == "" {
		return []ValueType{TypeAny}
	}

	parts := strings.Split(string(t), "|")
	out := make([]ValueType, 0, len(parts))

	for _, p := range parts {
		out = append(out, ValueType(strings.TrimSpace(p)))
	}

	return out
}

// Validate checks that every alternative is a known type.
func (t ValueType) Validate() error {
	for _, alt := range t.Alternatives() {
		if _, ok := knownTypes[alt]; !ok {
			return fmt.Errorf("unknown value type %q", alt)
		}
	}

	return nil
}

// Accepts reports whether v has one of the shapes allowed by t.
// A nil value (an explicit YAML null) is always accepted.
func (t ValueType) Accepts(v any) bool {
	if v == nil {
		return true
	}

	for _, alt := range t.Alternatives() {
		if acceptsOne(alt, v) {
			return true
		}
	}

	return false
}

// HasPath reports whether t allows a path value.
func (t ValueType) HasPath() bool {
	for _, alt := range t.Alternatives() {
		if alt == TypePath {
			return true
		}
	}

	return false
}

func acceptsOne(t ValueType, v any) bool {
	switch t {
	case TypeAny:
		return true
	case TypeString, TypePath:
		_, ok := v.(string)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeNumber:
		switch v.(type) {
		case int, int64, uint64, float64:
			return true
		}

		return false
	case TypeList:
		_, ok := v.([]any)
		return ok
	case TypeMap:
		_, ok := v.(map[string]any)
		return ok
	default:
		return false
	}
}

// OptionSpec declares one recognized option key.
type OptionSpec struct {
	Name string    `yaml:"name"`
	Type ValueType `yaml:"type,omitempty"`
}

// Kind describes a loader or plugin type.
type Kind struct {
	// Name is the canonical identifier, e.g. "babel-loader".
	Name string `yaml:"name"`
	// Aliases are alternative identifiers, e.g. "HtmlWebpackPlugin".
	Aliases []string `yaml:"aliases,omitempty"`
	// Options lists the recognized option keys.
	Options []OptionSpec `yaml:"options,omitempty"`
	// AnyOption accepts every key with any value.
	AnyOption bool `yaml:"any_option,omitempty"`
	// Hooks are the lifecycle hooks a plugin taps, in no particular order.
	// An empty list means the plugin may tap any hook. Unused for loaders.
	Hooks []string `yaml:"hooks,omitempty"`
}

// Option returns the OptionSpec declared for key.
func (k *Kind) Option(name string) (OptionSpec, bool) {
	if k.AnyOption {
		return OptionSpec{Name: name, Type: TypeAny}, true
	}

	for _, o := range k.Options {
		if o.Name == name {
			return o, true
		}
	}

	return OptionSpec{}, false
}

// OptionNames returns the declared option keys in declaration order.
func (k *Kind) OptionNames() []string {
	names := make([]string, 0, len(k.Options))
	for _, o := range k.Options {
		names = append(names, o.Name)
	}

	return names
}

// Taps reports whether the plugin participates in hook.
func (k *Kind) Taps(hook string) bool {
	if len(k.Hooks) == 0 {
		return true
	}

	for _, h := range k.Hooks {
		if h == hook {
			return true
		}
	}

	return false
}

func (k *Kind) validate() error {
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("kind name is empty")
	}

	seen := make(map[string]struct{}, len(k.Options))
	for _, o := range k.Options {
		if o.Name == "" {
			return fmt.Errorf("kind %q: option with empty name", k.Name)
		}

		if _, dup := seen[o.Name]; dup {
			return fmt.Errorf("kind %q: duplicate option %q", k.Name, o.Name)
		}

		seen[o.Name] = struct{}{}

		if err := o.Type.Validate(); err != nil {
			return fmt.Errorf("kind %q: option %q: %w", k.Name, o.Name, err)
		}
	}

	return nil
}

func (k *Kind) clone() *Kind {
	cp := *k
	cp.Aliases = append([]string(nil), k.Aliases...)
	cp.Options = append([]OptionSpec(nil), k.Options...)
	cp.Hooks = append([]string(nil), k.Hooks...)

	return &cp
}
