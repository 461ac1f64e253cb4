// Package merge implements depth-ordered deep merging of configuration
// trees.
//
// Files are bucketed by the component count of their paths: a file in a
// deeper directory sits in a higher bucket and overrides values from
// shallower ones. Buckets merge in ascending depth order, and files inside
// one bucket merge in lexicographic path order, which makes the whole
// operation deterministic.
//
// Deep merging recurses only through mapping pairs. Any other combination
// is replaced by the override side: sequences are not concatenated and
// scalars are not coerced.
//
// Sibling files at one depth that define the same top-level key produce a
// collision diagnostic. Diagnostics are informational; the merge always
// completes with override-wins semantics.
package merge
