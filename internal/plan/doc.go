// Package plan resolves a BuildConfig into an immutable, order-stable
// BuildPlan for an external bundler.
//
// Resolution pipeline:
//  1. Entry must be non-empty (checked before anything else)
//  2. Output directory and filename template → output descriptor
//  3. Alias table → sorted, one-level alias list (alias-to-alias is an error)
//  4. Rules in declared order: compile test/exclude/include, validate loader
//     options, reverse loaders into execution order
//  5. Plugins in declared order: validate options, keep order
//  6. Mode, devtool and cache defaults
//
// Resolve is pure: no filesystem access, no global state, and equal inputs
// produce equal plans (and equal fingerprints). It stops at the first
// *diagnostic.ConfigError. Check runs the same validations without stopping
// and adds warnings about suspicious but legal configurations.
//
// For each file exactly one rule applies: the first rule, in declaration
// order, whose patterns match. Later rules with the same patterns stay in
// the plan but never win for that file.
package plan
