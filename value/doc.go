// Package value defines the dynamically-typed configuration tree produced by
// parsing YAML documents and consumed by the merge engine.
//
// A Value is a sum type over the YAML data model: null, boolean, integer,
// float, string, sequence, and mapping. Mappings preserve document order,
// which Go's built-in maps cannot, so they are represented as ordered Entry
// slices with unique keys.
//
// Values are immutable by convention: every combining operation constructs
// fresh nodes and shares untouched subtrees, keeping inputs reusable.
//
// Binding layers that need native Go containers call Interface, which
// converts a tree into nil/bool/int64/float64/string/[]any/map[string]any.
// Integers stay integral and floats stay floating point, so a host runtime
// can pick the lossless representation for each number.
package value
