package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundle-planner/internal/buildconf"
	"bundle-planner/internal/diagnostic"
	"bundle-planner/internal/registry"
)

func codesAndFields(ds []diagnostic.Diagnostic) [][2]string {
	out := make([][2]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, [2]string{d.Code, d.Field})
	}

	return out
}

func TestCheckCollectsEveryError(t *testing.T) {
	cfg := &buildconf.BuildConfig{
		Output:  buildconf.Output{Filename: "/abs.js"},
		Resolve: buildconf.ResolveConfig{Alias: map[string]string{"a": "b", "b": "./x"}},
		Module: buildconf.ModuleConfig{Rules: []buildconf.TransformRule{
			{Test: buildconf.StringOrArray{"("}, Use: buildconf.LoaderList{{Loader: "nope-loader"}}},
		}},
		Plugins: []buildconf.PluginSpec{{Name: "BundleAnalyzerPlugin"}},
		Mode:    "staging",
	}

	res := Check(cfg)
	require.True(t, res.HasErrors())

	assert.Equal(t, [][2]string{
		{"empty-entry", "entry"},
		{"invalid-path", "output.path"},
		{"invalid-path", "output.filename"},
		{"cyclic-alias", "resolve.alias.a"},
		{"invalid-pattern", "module.rules[0].test[0]"},
		{"unknown-kind", "module.rules[0].use[0]"},
		{"unknown-kind", "plugins[0]"},
		{"invalid-value", "mode"},
	}, codesAndFields(res.Errors))

	assert.Equal(t, "module.rules", res.Errors[4].Scope)
	assert.Empty(t, res.Infos, "no defaults are reported for an invalid mode")
	assert.Error(t, res.Error())
}

func TestCheckWarningsAndDefaults(t *testing.T) {
	cfg := minimalConfig()
	cfg.Devtool = ptr("source-maps-please")
	cfg.Module.Rules = append(cfg.Module.Rules,
		buildconf.TransformRule{
			Test: buildconf.StringOrArray{`\.js$`},
			Use:  buildconf.LoaderList{{Loader: "source-map-loader"}},
		},
		buildconf.TransformRule{
			Test: buildconf.StringOrArray{`\.txt$`},
		},
	)

	res := Check(cfg)
	require.False(t, res.HasErrors(), "errors: %v", res.Error())
	assert.NoError(t, res.Error())

	assert.Equal(t, [][2]string{
		{"shadowed-rule", "module.rules[1]"},
		{"empty-rule", "module.rules[2]"},
		{"unknown-devtool", "devtool"},
	}, codesAndFields(res.Warnings))

	assert.Equal(t, [][2]string{
		{"default", "mode"},
		{"default", "cache"},
	}, codesAndFields(res.Infos))

	// Warnings never stop resolution.
	_, err := Resolve(cfg)
	assert.NoError(t, err)
}

func TestCheckCleanConfig(t *testing.T) {
	cfg, err := buildconf.Parse([]byte(appConfigYAML))
	require.NoError(t, err)

	res := Check(cfg)
	assert.Empty(t, res.All(), "diagnostics: %v", res.All())
}

func TestCheckKnownDevtools(t *testing.T) {
	for _, devtool := range []string{
		"eval",
		"false",
		"source-map",
		"eval-cheap-module-source-map",
		"hidden-nosources-source-map",
		"inline-cheap-source-map",
	} {
		t.Run(devtool, func(t *testing.T) {
			cfg := minimalConfig()
			cfg.Devtool = ptr(devtool)

			assert.Empty(t, Check(cfg).Warnings)
		})
	}
}

func TestCheckDefinitionErrorUsesBaseRegistry(t *testing.T) {
	cfg := minimalConfig()
	cfg.Definitions.Plugins = []registry.Kind{{Name: ""}}
	cfg.Plugins = []buildconf.PluginSpec{{Name: "HtmlWebpackPlugin"}}

	res := Check(cfg)

	assert.Equal(t, [][2]string{
		{"invalid-value", "definitions.plugins[0]"},
	}, codesAndFields(res.Errors))
	assert.Equal(t, "definitions", res.Errors[0].Scope)
}

func TestCheckAgreesWithResolve(t *testing.T) {
	r := NewResolver(nil)

	for name, mutate := range map[string]func(*buildconf.BuildConfig){
		"valid":         func(*buildconf.BuildConfig) {},
		"bad filename":  func(cfg *buildconf.BuildConfig) { cfg.Output.Filename = "[nam].js" },
		"bad loader":    func(cfg *buildconf.BuildConfig) { cfg.Module.Rules[0].Use[0].Loader = "babel" },
		"bad option":    func(cfg *buildconf.BuildConfig) { cfg.Module.Rules[0].Use[0].Options = map[string]any{"x": 1} },
		"cyclic alias":  func(cfg *buildconf.BuildConfig) { cfg.Resolve.Alias = map[string]string{"x": "x/y"} },
		"empty context": func(cfg *buildconf.BuildConfig) { cfg.Context = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := minimalConfig()
			mutate(cfg)

			_, err := r.Resolve(cfg)
			res := r.Check(cfg)

			assert.Equal(t, err != nil, res.HasErrors())

			if err != nil {
				var ce *diagnostic.ConfigError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, ce.Reason.String(), res.Errors[0].Code)
				assert.Equal(t, ce.Field, res.Errors[0].Field)
			}
		})
	}
}
