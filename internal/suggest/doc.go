// Package suggest ranks known names by similarity to a misspelled one.
//
// Key functions:
//   - NormalizeName: folds case and separators so "HtmlWebpackPlugin" and
//     "html-webpack-plugin" compare equal
//   - Levenshtein: edit distance between strings
//   - Rank: scores every known name against the unknown one
//   - Hint: a "did you mean" suffix for error messages
package suggest
