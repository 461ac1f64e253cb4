// Package hierarchy locates the configuration files that apply to a target
// location inside a base directory tree.
//
// Resolve canonicalizes the base directory and target path and computes the
// target's position relative to the base, rejecting targets outside the
// base. Scan then walks the tree, following symbolic links with a
// canonical-path cycle guard, and keeps the YAML files whose directory is
// the base itself or an ancestor (path-prefix) of the target.
//
// The scan imposes no merge ordering of its own; it returns paths sorted
// lexicographically so downstream processing is deterministic, and the
// depth-based precedence is applied by the merge package.
//
// Error policy follows the fail-fast default: an unreadable directory
// aborts the whole scan with a single error. ScanOptions.SkipUnreadable
// switches to skip-and-diagnose, where each unreadable path contributes a
// diagnostic string instead.
package hierarchy
