package buildconf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSONC Format = "jsonc"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSONC, nil
	default:
		return "", fmt.Errorf("unsupported config file extension %q (want .yaml, .yml, .json or .jsonc)", filepath.Ext(path))
	}
}

// LoadFile loads and parses a build configuration from the given path.
func LoadFile(path string) (*BuildConfig, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg *BuildConfig
	if format == FormatJSONC {
		cfg, err = ParseJSONC(data)
	} else {
		cfg, err = Parse(data)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFiles loads every path and merges them in order. A single path is
// equivalent to LoadFile.
func LoadFiles(paths ...string) (*BuildConfig, error) {
	switch len(paths) {
	case 0:
		return nil, fmt.Errorf("no config files given")
	case 1:
		return LoadFile(paths[0])
	}

	docs := make([]map[string]any, 0, len(paths))

	for _, p := range paths {
		doc, err := readDocument(p)
		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}

	merged, err := Merge(docs...)
	if err != nil {
		return nil, err
	}

	return decodeDocument(merged)
}

// Parse parses YAML data into a BuildConfig. The document is checked
// against Schema first, so misspelled keys are errors rather than ignored.
func Parse(data []byte) (*BuildConfig, error) {
	var doc map[string]any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := ValidateDocument(doc); err != nil {
		return nil, err
	}

	var cfg BuildConfig

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ParseJSONC parses JSON with comments and trailing commas into a BuildConfig.
func ParseJSONC(data []byte) (*BuildConfig, error) {
	doc, err := jsoncDocument(data)
	if err != nil {
		return nil, err
	}

	return decodeDocument(doc)
}

// Marshal serializes a BuildConfig to YAML.
func Marshal(cfg *BuildConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a BuildConfig to the given path as YAML.
func WriteFile(cfg *BuildConfig, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyDefaults expands the rule-level loader shorthand into Use. Rules that
// set both forms are left alone so resolution can report them.
func applyDefaults(cfg *BuildConfig) {
	for i := range cfg.Module.Rules {
		r := &cfg.Module.Rules[i]
		if r.Loader != "" && len(r.Use) == 0 {
			r.Use = LoaderList{{Loader: r.Loader, Options: r.Options}}
			r.Loader = ""
			r.Options = nil
		}
	}
}

// readDocument reads one file into a generic document for merging.
func readDocument(path string) (map[string]any, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var doc map[string]any
	if format == FormatJSONC {
		doc, err = jsoncDocument(data)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if doc == nil {
		doc = map[string]any{}
	}

	return doc, nil
}

func jsoncDocument(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config JSONC: %w", err)
	}

	return doc, nil
}

// decodeDocument re-encodes a generic document as YAML and decodes it with
// the schema, so every input format shares the same shorthands.
func decodeDocument(doc map[string]any) (*BuildConfig, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged config: %w", err)
	}

	return Parse(data)
}
