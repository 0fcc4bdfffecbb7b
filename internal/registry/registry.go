package registry

import (
	"fmt"
	"slices"

	"bundle-planner/internal/diagnostic"
)

// Definitions are custom kinds declared by a configuration file.
type Definitions struct {
	Loaders []Kind `yaml:"loaders,omitempty"`
	Plugins []Kind `yaml:"plugins,omitempty"`
}

// IsEmpty returns true if no kinds are declared.
func (d Definitions) IsEmpty() bool {
	return len(d.Loaders) == 0 && len(d.Plugins) == 0
}

// Registry maps loader and plugin identifiers to their kinds.
// A Registry is safe for concurrent reads once built.
type Registry struct {
	loaders table
	plugins table
}

// table indexes kinds by canonical name and by alias.
type table struct {
	byName map[string]*Kind
	kinds  map[string]*Kind // canonical name -> kind
}

func newTable() table {
	return table{
		byName: make(map[string]*Kind),
		kinds:  make(map[string]*Kind),
	}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		loaders: newTable(),
		plugins: newTable(),
	}
}

// Builtin returns a fresh registry holding the built-in loader and plugin
// kinds. Each call returns an independent copy.
func Builtin() *Registry {
	r := New()
	for i := range builtinLoaders {
		r.loaders.put(builtinLoaders[i].clone())
	}

	for i := range builtinPlugins {
		r.plugins.put(builtinPlugins[i].clone())
	}

	return r
}

// RegisterLoader adds or replaces a loader kind.
func (r *Registry) RegisterLoader(k Kind) error {
	if err := k.validate(); err != nil {
		return err
	}

	r.loaders.put(k.clone())

	return nil
}

// RegisterPlugin adds or replaces a plugin kind.
func (r *Registry) RegisterPlugin(k Kind) error {
	if err := k.validate(); err != nil {
		return err
	}

	r.plugins.put(k.clone())

	return nil
}

// Extend returns a copy of r with the given definitions registered on top.
// r itself is left unchanged. Errors are reported as invalid-value
// ConfigErrors pointing at the offending definition.
func (r *Registry) Extend(defs Definitions) (*Registry, error) {
	out := r.Clone()
	if defs.IsEmpty() {
		return out, nil
	}

	for i, k := range defs.Loaders {
		if err := out.RegisterLoader(k); err != nil {
			return nil, diagnostic.Errorf(diagnostic.ReasonInvalidValue,
				fmt.Sprintf("definitions.loaders[%d]", i), "%v", err)
		}
	}

	for i, k := range defs.Plugins {
		if err := out.RegisterPlugin(k); err != nil {
			return nil, diagnostic.Errorf(diagnostic.ReasonInvalidValue,
				fmt.Sprintf("definitions.plugins[%d]", i), "%v", err)
		}
	}

	return out, nil
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	out := New()
	for _, name := range r.loaders.names() {
		out.loaders.put(r.loaders.kinds[name].clone())
	}

	for _, name := range r.plugins.names() {
		out.plugins.put(r.plugins.kinds[name].clone())
	}

	return out
}

// Loader looks up a loader kind by name or alias.
func (r *Registry) Loader(name string) (*Kind, bool) {
	k, ok := r.loaders.byName[name]
	return k, ok
}

// Plugin looks up a plugin kind by name or alias.
func (r *Registry) Plugin(name string) (*Kind, bool) {
	k, ok := r.plugins.byName[name]
	return k, ok
}

// Loaders returns all loader kinds sorted by canonical name.
func (r *Registry) Loaders() []*Kind {
	return r.loaders.sorted()
}

// Plugins returns all plugin kinds sorted by canonical name.
func (r *Registry) Plugins() []*Kind {
	return r.plugins.sorted()
}

func (t table) put(k *Kind) {
	// Replacing a kind drops every name the previous one answered to.
	if old, ok := t.kinds[k.Name]; ok {
		delete(t.byName, old.Name)

		for _, a := range old.Aliases {
			if t.byName[a] == old {
				delete(t.byName, a)
			}
		}
	}

	t.kinds[k.Name] = k
	t.byName[k.Name] = k

	for _, a := range k.Aliases {
		t.byName[a] = k
	}
}

func (t table) names() []string {
	names := make([]string, 0, len(t.kinds))
	for name := range t.kinds {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

func (t table) sorted() []*Kind {
	names := t.names()
	out := make([]*Kind, 0, len(names))

	for _, name := range names {
		out = append(out, t.kinds[name])
	}

	return out
}
