// Package registry holds the loader and plugin kinds a build configuration
// may reference, together with the option names each kind recognizes.
//
// Option bags are closed: a key that is not declared for a kind is rejected
// during resolution. Kinds with naturally open option bags (DefinePlugin,
// ProvidePlugin) set AnyOption instead of listing keys.
//
// A configuration may declare additional kinds under "definitions". They are
// layered on top of a copy of the built-in table with Extend; the built-in
// table itself is never mutated.
package registry
