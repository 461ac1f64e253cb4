package merge

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/0xalexb/skikt/value"
)

// Deep merges two configuration trees, with override taking precedence.
//
// When both trees are mappings, the result contains every key of base in
// its original order; keys also present in override are merged recursively
// when both sides are mappings and replaced outright otherwise, and keys
// only in override are appended in override order. When either side is not
// a mapping, the result is override — scalars, sequences, and
// mismatched-type pairs are always replaced whole, never concatenated.
//
// Neither input is mutated; merged levels are freshly constructed and
// untouched subtrees are shared with the inputs.
func Deep(base, override value.Value) value.Value {
	if base.Kind() != value.KindMapping || override.Kind() != value.KindMapping {
		return override
	}

	baseEntries := base.Mapping()
	merged := make([]value.Entry, len(baseEntries))
	copy(merged, baseEntries)

	for _, over := range override.Mapping() {
		idx := indexOfKey(merged, over.Key)
		if idx < 0 {
			merged = append(merged, over)

			continue
		}

		merged[idx] = value.Entry{
			Key: over.Key,
			Val: Deep(merged[idx].Val, over.Val),
		}
	}

	return value.Mapping(merged...)
}

func indexOfKey(entries []value.Entry, key value.Value) int {
	for i := range entries {
		if entries[i].Key.Equal(key) {
			return i
		}
	}

	return -1
}

// ByDepth merges a set of loaded configuration files by path depth.
//
// The depth key of a file is the component count of its full path, so files
// in deeper directories carry higher precedence. Depth groups are processed
// in ascending order, and each file's tree is deep-merged over the running
// result. Files that share a depth are siblings with no inherent
// precedence, so they are processed in lexicographic path order to keep
// the same-depth winner reproducible across runs.
//
// Within one depth group, a top-level string key contributed by more than
// one mapping-typed file produces a collision diagnostic per repeated
// occurrence. Collisions never fail the merge; the later file in processing
// order wins.
//
// The result is always a mapping: an empty input produces an empty mapping
// and no diagnostics.
func ByDepth(files map[string]value.Value) (value.Value, []string) {
	merged := value.Mapping()

	if len(files) == 0 {
		return merged, nil
	}

	groups := make(map[int][]string)

	for path := range files {
		d := depth(path)
		groups[d] = append(groups[d], path)
	}

	depths := make([]int, 0, len(groups))
	for d := range groups {
		depths = append(depths, d)
	}

	sort.Ints(depths)

	var diags []string

	for _, d := range depths {
		paths := groups[d]
		sort.Strings(paths)

		diags = append(diags, collisions(d, paths, files)...)

		for _, path := range paths {
			merged = Deep(merged, files[path])
		}
	}

	return merged, diags
}

// collisions reports top-level string keys defined by more than one file in
// a single depth group. Only the files' own top-level keys participate, not
// keys introduced by earlier merge steps, and non-string keys are ignored.
func collisions(depth int, paths []string, files map[string]value.Value) []string {
	var diags []string

	firstSource := make(map[string]string)

	for _, path := range paths {
		for _, entry := range files[path].Mapping() {
			key, ok := entry.Key.AsString()
			if !ok {
				continue
			}

			first, seen := firstSource[key]
			if seen {
				diags = append(diags, fmt.Sprintf(
					"Key collision at depth %d: '%s' found in both %s and %s",
					depth, key, first, path,
				))

				continue
			}

			firstSource[key] = path
		}
	}

	return diags
}

// depth counts the path components of a file path. The root of an
// absolute path counts as one component, so "/r/a/config.yaml" has depth
// four and a file one directory deeper is always strictly larger.
func depth(path string) int {
	clean := filepath.Clean(path)
	sep := string(filepath.Separator)

	count := 0
	if strings.HasPrefix(clean, sep) {
		count++
	}

	for _, part := range strings.Split(clean, sep) {
		if part != "" && part != "." {
			count++
		}
	}

	return count
}
