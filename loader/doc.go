// Package loader parses discovered configuration files into value trees.
//
// Parsing uses github.com/goccy/go-yaml with the UseOrderedMap option, so
// mappings keep their document order all the way into the merged result.
//
// Loading is fail-fast by contract: one unreadable or malformed file aborts
// the whole load with an error naming the path. Callers that want partial
// results must filter paths before calling Load; the loader never silently
// drops a file.
package loader
