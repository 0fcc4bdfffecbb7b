// Package diagnostic provides the configuration error type returned by plan
// resolution and the structured diagnostics collected by a full check.
//
// Resolution is all-or-nothing: it stops at the first *ConfigError. A check
// keeps going and records every problem, plus warnings and notes about
// defaults, in a Diagnostics value.
package diagnostic
