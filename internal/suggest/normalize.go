package suggest

import (
	"strings"
	"unicode"
)

// kindSuffixes are stripped by NormalizeNameWithSuffixStrip, longest first.
var kindSuffixes = []string{"webpackplugin", "plugin", "loader"}

// NormalizeName lowercases s and drops separators after splitting CamelCase,
// so "MiniCssExtractPlugin", "mini-css-extract-plugin" and
// "mini_css_extract_plugin" all become "minicssextractplugin".
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// NormalizeNameWithSuffixStrip is NormalizeName with a trailing "loader",
// "plugin" or "webpackplugin" removed, so "babel" is close to "babel-loader".
func NormalizeNameWithSuffixStrip(s string) string {
	n := NormalizeName(s)

	for _, suffix := range kindSuffixes {
		if strings.HasSuffix(n, suffix) && len(n) > len(suffix) {
			return strings.TrimSuffix(n, suffix)
		}
	}

	return n
}

// Tokenize splits a name on separators and CamelCase boundaries:
//   - "HtmlWebpackPlugin" -> ["Html", "Webpack", "Plugin"]
//   - "css-loader" -> ["css", "loader"]
//   - "process.env.NODE_ENV" -> ["process", "env", "NODE", "ENV"]
//   - "XMLHttpRequest" -> ["XML", "Http", "Request"]
func Tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.' || r == ' '
}

func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "cssLoader": lower to upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLHttp": the last capital of an acronym starts the next word.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
