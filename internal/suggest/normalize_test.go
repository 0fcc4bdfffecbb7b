package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"html-webpack-plugin", "htmlwebpackplugin"},
		{"HtmlWebpackPlugin", "htmlwebpackplugin"},
		{"mini_css_extract_plugin", "minicssextractplugin"},
		{"importLoaders", "importloaders"},
		{"process.env.NODE_ENV", "processenvnodeenv"},
		{"XMLHttpRequest", "xmlhttprequest"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeNameWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"babel-loader", "babel"},
		{"HtmlWebpackPlugin", "html"},
		{"copy-webpack-plugin", "copy"},
		{"DefinePlugin", "define"},
		{"loader", "loader"},
		{"plugin", "plugin"},
		{"presets", "presets"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeNameWithSuffixStrip(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"HtmlWebpackPlugin", []string{"Html", "Webpack", "Plugin"}},
		{"css-loader", []string{"css", "loader"}},
		{"process.env.NODE_ENV", []string{"process", "env", "NODE", "ENV"}},
		{"XMLHttpRequest", []string{"XML", "Http", "Request"}},
		{"cacheDirectory", []string{"cache", "Directory"}},
		{"--a--", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}
