// Package skikt resolves the effective configuration for a location inside
// a directory tree.
//
// Given a base directory and a target path inside it, Merge collects every
// .yaml/.yml file whose directory lies on the path from base to target and
// deep-merges the parsed trees by directory depth: files closer to the base
// provide defaults, files closer to the target override them, in the manner
// of .editorconfig-style cascading settings.
//
//	result, err := skikt.Merge("/etc/app", "/etc/app/team/service")
//	if err != nil {
//	    // target outside base, unreadable path, or malformed file
//	}
//	port, ok := result.Config.Get("port")
//
// Sibling files at the same depth that define the same top-level key are
// reported on Result.Diagnostics and never fail the merge; the
// lexicographically later file wins. An empty hierarchy yields an empty
// mapping plus a single explanatory diagnostic.
//
// Typed access goes through Provider, which navigates the merged tree with
// a colon-separated path and decodes the section into a struct:
//
//	cfg, err := skikt.Provider(&ServiceConfig{}, "service:http")(result)
//
// Applications built on Fx wire a hierarchy with NewModule, which resolves
// the configuration at container start and supplies the named *Result.
package skikt
