package buildconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appConfigYAML = `
entry: ./src/main/js/app.js
devtool: source-map
cache: true
mode: development
resolve:
  alias:
    stompjs: ./node_modules/stompjs/lib/stomp.js
output:
  path: src/main/resources/static/built
  filename: bundle.js
module:
  rules:
    - test: \.js$
      exclude: node_modules
      use:
        - loader: babel-loader
          options:
            presets: ["@babel/preset-env", "@babel/preset-react"]
plugins:
  - name: HtmlWebpackPlugin
    options:
      template: ./src/main/resources/templates/index.html
      filename: index.html
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(appConfigYAML))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "./src/main/js/app.js", cfg.Entry)
	assert.Equal(t, ModeDevelopment, cfg.Mode)
	require.NotNil(t, cfg.Devtool)
	assert.Equal(t, "source-map", *cfg.Devtool)
	require.NotNil(t, cfg.Cache)
	assert.True(t, *cfg.Cache)

	assert.Equal(t, "src/main/resources/static/built", cfg.Output.Path)
	assert.Equal(t, "bundle.js", cfg.Output.Filename)
	assert.Equal(t, map[string]string{"stompjs": "./node_modules/stompjs/lib/stomp.js"}, cfg.Resolve.Alias)

	require.Len(t, cfg.Module.Rules, 1)
	rule := cfg.Module.Rules[0]
	assert.Equal(t, StringOrArray{`\.js$`}, rule.Test)
	assert.Equal(t, StringOrArray{"node_modules"}, rule.Exclude)
	assert.Empty(t, rule.Include)
	require.Len(t, rule.Use, 1)
	assert.Equal(t, "babel-loader", rule.Use[0].Loader)
	assert.Equal(t, []any{"@babel/preset-env", "@babel/preset-react"}, rule.Use[0].Options["presets"])

	require.Len(t, cfg.Plugins, 1)
	assert.Equal(t, "HtmlWebpackPlugin", cfg.Plugins[0].Name)
	assert.Equal(t, "index.html", cfg.Plugins[0].Options["filename"])
}

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse([]byte(`
entry: ./main.js
output:
  path: /out
  filename: bundle.js
`))
	require.NoError(t, err)

	assert.Empty(t, cfg.Mode)
	assert.Nil(t, cfg.Devtool, "unset devtool stays nil so the mode default applies")
	assert.Nil(t, cfg.Cache)
	assert.Empty(t, cfg.Module.Rules)
	assert.True(t, cfg.Definitions.IsEmpty())
}

func TestParseDevtoolFalse(t *testing.T) {
	cfg, err := Parse([]byte(`
entry: ./main.js
devtool: false
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Devtool)
	assert.Equal(t, "false", *cfg.Devtool)
}

func TestParseLoaderShorthands(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected LoaderList
	}{
		{
			name: "single name",
			yaml: `
module:
  rules:
    - test: \.txt$
      use: raw-loader
`,
			expected: LoaderList{{Loader: "raw-loader"}},
		},
		{
			name: "single mapping",
			yaml: `
module:
  rules:
    - test: \.css$
      use:
        loader: css-loader
        options: {modules: true}
`,
			expected: LoaderList{{Loader: "css-loader", Options: map[string]any{"modules": true}}},
		},
		{
			name: "mixed list",
			yaml: `
module:
  rules:
    - test: \.scss$
      use: [style-loader, {loader: css-loader, options: {importLoaders: 1}}, sass-loader]
`,
			expected: LoaderList{
				{Loader: "style-loader"},
				{Loader: "css-loader", Options: map[string]any{"importLoaders": 1}},
				{Loader: "sass-loader"},
			},
		},
		{
			name: "rule level loader",
			yaml: `
module:
  rules:
    - test: \.ts$
      loader: ts-loader
      options:
        transpileOnly: true
`,
			expected: LoaderList{{Loader: "ts-loader", Options: map[string]any{"transpileOnly": true}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			require.Len(t, cfg.Module.Rules, 1)

			rule := cfg.Module.Rules[0]
			assert.Equal(t, tt.expected, rule.Use)
			assert.Empty(t, rule.Loader)

			specs, ok := rule.LoaderSpecs()
			assert.True(t, ok)
			assert.Equal(t, []LoaderSpec(tt.expected), specs)
		})
	}
}

func TestLoaderSpecsAmbiguous(t *testing.T) {
	rule := TransformRule{
		Loader: "babel-loader",
		Use:    LoaderList{{Loader: "ts-loader"}},
	}

	_, ok := rule.LoaderSpecs()
	assert.False(t, ok)

	cfg, err := Parse([]byte(`
module:
  rules:
    - loader: babel-loader
      use: ts-loader
`))
	require.NoError(t, err)
	assert.Equal(t, "babel-loader", cfg.Module.Rules[0].Loader, "ambiguous rules are kept for resolution to report")
}

func TestParsePluginShorthand(t *testing.T) {
	cfg, err := Parse([]byte(`
plugins:
  - clean-webpack-plugin
  - name: define-plugin
    options:
      process.env.NODE_ENV: '"production"'
`))
	require.NoError(t, err)
	require.Len(t, cfg.Plugins, 2)
	assert.Equal(t, PluginSpec{Name: "clean-webpack-plugin"}, cfg.Plugins[0])
	assert.Equal(t, `"production"`, cfg.Plugins[1].Options["process.env.NODE_ENV"])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"duplicate alias key", "resolve:\n  alias:\n    a: ./x\n    a: ./y\n"},
		{"test as mapping", "module:\n  rules:\n    - test: {a: b}\n"},
		{"use as number list", "module:\n  rules:\n    - use: [[1]]\n"},
		{"plugin as list", "plugins:\n  - [a]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseJSONC(t *testing.T) {
	data := []byte(`{
  // The application bundle.
  "entry": "./src/main/js/app.js",
  "mode": "production",
  "output": {"path": "/srv/static", "filename": "[name].[contenthash:8].js"},
  "module": {
    "rules": [
      {"test": "\\.js$", "exclude": ["node_modules"], "use": ["babel-loader"]}, /* trailing comma next */
    ],
  },
  "plugins": [{"name": "html-webpack-plugin", "options": {"inject": "body", "hash": true}}],
}`)

	cfg, err := ParseJSONC(data)
	require.NoError(t, err)

	assert.Equal(t, ModeProduction, cfg.Mode)
	assert.Equal(t, "[name].[contenthash:8].js", cfg.Output.Filename)
	require.Len(t, cfg.Module.Rules, 1)
	assert.Equal(t, StringOrArray{`\.js$`}, cfg.Module.Rules[0].Test)
	assert.Equal(t, []string{"babel-loader"}, cfg.Module.Rules[0].Use.Names())
	assert.Equal(t, true, cfg.Plugins[0].Options["hash"])

	_, err = ParseJSONC([]byte(`{"entry": `))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "webpack.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(appConfigYAML), 0o644))

	cfg, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "./src/main/js/app.js", cfg.Entry)

	jsonPath := filepath.Join(dir, "webpack.jsonc")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"entry": "./a.js", /* c */}`), 0o644))

	cfg, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "./a.js", cfg.Entry)

	_, err = LoadFile(filepath.Join(dir, "webpack.toml"))
	assert.ErrorContains(t, err, "unsupported config file extension")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadFilesMerges(t *testing.T) {
	dir := t.TempDir()

	common := filepath.Join(dir, "common.yaml")
	require.NoError(t, os.WriteFile(common, []byte(`
entry: ./src/index.js
output:
  path: dist
  filename: bundle.js
module:
  rules:
    - test: \.js$
      use: babel-loader
plugins:
  - html-webpack-plugin
`), 0o644))

	dev := filepath.Join(dir, "dev.jsonc")
	require.NoError(t, os.WriteFile(dev, []byte(`{
  "mode": "development",
  "output": {"filename": "[name].js"},
  "module": {"rules": [{"test": "\\.css$", "use": ["style-loader", "css-loader"]}]},
  "plugins": ["define-plugin"],
}`), 0o644))

	cfg, err := LoadFiles(common, dev)
	require.NoError(t, err)

	assert.Equal(t, ModeDevelopment, cfg.Mode)
	assert.Equal(t, "dist", cfg.Output.Path)
	assert.Equal(t, "[name].js", cfg.Output.Filename)
	require.Len(t, cfg.Module.Rules, 2)
	assert.Equal(t, StringOrArray{`\.js$`}, cfg.Module.Rules[0].Test)
	assert.Equal(t, []string{"style-loader", "css-loader"}, cfg.Module.Rules[1].Use.Names())
	require.Len(t, cfg.Plugins, 2)
	assert.Equal(t, "html-webpack-plugin", cfg.Plugins[0].Name)
	assert.Equal(t, "define-plugin", cfg.Plugins[1].Name)

	_, err = LoadFiles()
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Parse([]byte(appConfigYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(cfg, path))

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
