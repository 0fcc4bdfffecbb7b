package buildconf

import (
	"bundle-planner/internal/registry"
)

// BuildConfig is the root of a build configuration file.
type BuildConfig struct {
	// Context is the base directory relative paths are joined onto.
	// Empty means paths stay relative to wherever the bundler runs.
	Context string `yaml:"context,omitempty"`

	// Entry is the source entry-point path.
	Entry string `yaml:"entry"`

	// Output describes where the bundle is written.
	Output Output `yaml:"output"`

	// Mode is development or production. Empty selects production.
	Mode Mode `yaml:"mode,omitempty"`

	// Devtool is the source-map policy, passed through verbatim.
	// Nil selects the mode default; "false" disables source maps.
	Devtool *string `yaml:"devtool,omitempty"`

	// Cache is passed through to the bundler's caching layer.
	// Nil selects the mode default.
	Cache *bool `yaml:"cache,omitempty"`

	// Resolve holds module resolution settings.
	Resolve ResolveConfig `yaml:"resolve,omitempty"`

	// Module holds the transformation rules.
	Module ModuleConfig `yaml:"module,omitempty"`

	// Plugins are executed in declaration order at each lifecycle hook.
	Plugins []PluginSpec `yaml:"plugins,omitempty"`

	// Definitions declares loader and plugin kinds beyond the built-in ones.
	Definitions registry.Definitions `yaml:"definitions,omitempty"`
}

// Output is the output descriptor of a configuration.
type Output struct {
	// Path is the output directory.
	Path string `yaml:"path"`
	// Filename is the output file name template, e.g. "[name].[contenthash].js".
	Filename string `yaml:"filename"`
	// PublicPath is passed through unchanged.
	PublicPath string `yaml:"publicPath,omitempty"`
}

// ResolveConfig holds module-name substitutions.
type ResolveConfig struct {
	// Alias maps a module name to its replacement. A key ending in "$"
	// matches the module name exactly; other keys also match "key/...".
	Alias map[string]string `yaml:"alias,omitempty"`
}

// ModuleConfig holds the ordered rule list.
type ModuleConfig struct {
	Rules []TransformRule `yaml:"rules,omitempty"`
}

// TransformRule maps matching files to a loader pipeline.
type TransformRule struct {
	// Test holds regular expressions; a file matches if any of them does.
	Test StringOrArray `yaml:"test,omitempty"`
	// Exclude holds regular expressions; a file matching any of them is skipped.
	Exclude StringOrArray `yaml:"exclude,omitempty"`
	// Include holds glob patterns; when present a file must match one of them.
	Include StringOrArray `yaml:"include,omitempty"`
	// Use lists loaders in declaration order. They execute last to first.
	Use LoaderList `yaml:"use,omitempty"`

	// Loader and Options are the single-loader shorthand.
	Loader  string         `yaml:"loader,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// LoaderSpecs returns the declared loaders, expanding the rule-level
// shorthand when Use is empty. The second result is false when both the
// shorthand and Use are set, which is ambiguous.
func (r *TransformRule) LoaderSpecs() ([]LoaderSpec, bool) {
	if r.Loader == "" {
		return r.Use, true
	}

	if len(r.Use) > 0 {
		return nil, false
	}

	return []LoaderSpec{{Loader: r.Loader, Options: r.Options}}, true
}

// LoaderSpec is one named transformation step.
type LoaderSpec struct {
	Loader  string         `yaml:"loader"`
	Options map[string]any `yaml:"options,omitempty"`
}

// LoaderList is an ordered loader sequence.
type LoaderList []LoaderSpec

// Names returns the loader names in declaration order.
func (l LoaderList) Names() []string {
	names := make([]string, 0, len(l))
	for _, s := range l {
		names = append(names, s.Loader)
	}

	return names
}

// PluginSpec is one build-lifecycle plugin.
type PluginSpec struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options,omitempty"`
}

// Mode selects downstream optimization behavior.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// IsValid returns true if the mode is a recognized value.
func (m Mode) IsValid() bool {
	return m == ModeDevelopment || m == ModeProduction
}

// StringOrArray is a list that may be written as a single string.
type StringOrArray []string
