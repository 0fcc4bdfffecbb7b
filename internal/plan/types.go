package plan

import (
	"regexp"

	"github.com/gobwas/glob"

	"bundle-planner/internal/buildconf"
)

// BuildPlan is the fully-resolved output of the resolver.
// It is never mutated after Resolve returns.
type BuildPlan struct {
	// Context is the cleaned base directory ("" when none was given).
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
	// Entry is the entry-point path as declared.
	Entry string `json:"entry" yaml:"entry"`
	// Output is the resolved output descriptor.
	Output OutputDescriptor `json:"output" yaml:"output"`
	// Aliases is the alias table sorted by name.
	Aliases []ResolvedAlias `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	// Rules are in declaration order.
	Rules []ResolvedRule `json:"rules,omitempty" yaml:"rules,omitempty"`
	// Plugins are in declaration order, which is also execution order.
	Plugins []ResolvedPlugin `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	// Mode is the effective mode.
	Mode buildconf.Mode `json:"mode" yaml:"mode"`
	// Devtool is the effective source-map policy ("" disables source maps).
	Devtool string `json:"devtool" yaml:"devtool"`
	// Cache is the effective cache flag.
	Cache bool `json:"cache" yaml:"cache"`
}

// OutputDescriptor is where the bundle is written.
type OutputDescriptor struct {
	Directory  string `json:"directory" yaml:"directory"`
	Filename   string `json:"filename" yaml:"filename"`
	File       string `json:"file" yaml:"file"`
	PublicPath string `json:"publicPath,omitempty" yaml:"publicPath,omitempty"`
}

// ResolvedAlias is one module-name substitution.
type ResolvedAlias struct {
	// Name is the alias key without a trailing "$".
	Name string `json:"name" yaml:"name"`
	// Target is the replacement; relative targets are joined onto the context.
	Target string `json:"target" yaml:"target"`
	// Exact is true for "$"-suffixed keys, which match only the bare name.
	Exact bool `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// ResolvedRule is a validated rule with compiled patterns.
type ResolvedRule struct {
	// Index is the rule's position in module.rules.
	Index   int      `json:"index" yaml:"index"`
	Test    []string `json:"test,omitempty" yaml:"test,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	// Loaders are in execution order: the last declared loader comes first.
	Loaders []ResolvedLoader `json:"loaders" yaml:"loaders"`

	test    []*regexp.Regexp
	exclude []*regexp.Regexp
	include []glob.Glob
}

// ResolvedLoader is one validated loader step.
type ResolvedLoader struct {
	Name    string         `json:"name" yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// ResolvedPlugin is one validated plugin.
type ResolvedPlugin struct {
	// Name is the canonical kind name, even when an alias was declared.
	Name    string         `json:"name" yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	// Hooks the plugin taps; empty means any hook.
	Hooks []string `json:"hooks,omitempty" yaml:"hooks,omitempty"`
}

// LoaderNames returns the loader names in execution order.
func (r *ResolvedRule) LoaderNames() []string {
	names := make([]string, 0, len(r.Loaders))
	for _, l := range r.Loaders {
		names = append(names, l.Name)
	}

	return names
}

// Taps reports whether the plugin runs at hook.
func (p *ResolvedPlugin) Taps(hook string) bool {
	if len(p.Hooks) == 0 {
		return true
	}

	for _, h := range p.Hooks {
		if h == hook {
			return true
		}
	}

	return false
}
