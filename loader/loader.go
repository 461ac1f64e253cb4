package loader

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/0xalexb/skikt/value"

	"github.com/goccy/go-yaml"
)

// ErrParse is returned when a discovered file is not valid YAML. The
// wrapping error identifies the offending path.
var ErrParse = errors.New("malformed YAML document")

// Load reads and parses every path into a configuration tree, returning a
// map from path to tree. Loading is fail-fast: the first unreadable or
// unparsable file aborts the whole load. Paths are processed in sorted
// order, so the reported failure is always the lexicographically-first
// failing path regardless of input order.
//
// A document that parses to null (an empty file, or a bare document
// marker) yields an empty mapping rather than null, so it neither
// contributes nor erases values during a merge. Other non-mapping
// top-level documents are returned as-is.
func Load(paths []string) (map[string]value.Value, error) {
	ordered := make([]string, len(paths))
	copy(ordered, paths)
	sort.Strings(ordered)

	configs := make(map[string]value.Value, len(ordered))

	for _, path := range ordered {
		tree, err := loadFile(path)
		if err != nil {
			return nil, err
		}

		configs[path] = tree
	}

	return configs, nil
}

func loadFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from the hierarchy scan
	if err != nil {
		return value.Value{}, fmt.Errorf("reading file %q: %w", path, err)
	}

	var doc any

	err = yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return value.Value{}, fmt.Errorf("file %q: %w: %v", path, ErrParse, err)
	}

	tree := fromYAML(doc)
	if tree.IsNull() {
		return value.Mapping(), nil
	}

	return tree, nil
}

// fromYAML converts the generic decode result into a value tree. Mappings
// arrive as yaml.MapSlice because of UseOrderedMap, preserving document
// order. Tagged scalars the decoder resolves to other Go types collapse to
// their string form.
func fromYAML(v any) value.Value {
	switch typed := v.(type) {
	case nil:
		return value.Null()
	case bool:
		return value.Bool(typed)
	case int:
		return value.Int(int64(typed))
	case int64:
		return value.Int(typed)
	case uint64:
		return value.Int(int64(typed))
	case float64:
		return value.Float(typed)
	case string:
		return value.String(typed)
	case []any:
		items := make([]value.Value, len(typed))
		for i, item := range typed {
			items[i] = fromYAML(item)
		}

		return value.Sequence(items...)
	case yaml.MapSlice:
		entries := make([]value.Entry, len(typed))
		for i, item := range typed {
			entries[i] = value.Entry{
				Key: fromYAML(item.Key),
				Val: fromYAML(item.Value),
			}
		}

		return value.Mapping(entries...)
	case map[string]any:
		// Not produced under UseOrderedMap; handled for completeness.
		keys := make([]string, 0, len(typed))
		for k := range typed {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		entries := make([]value.Entry, len(keys))
		for i, k := range keys {
			entries[i] = value.Entry{
				Key: value.String(k),
				Val: fromYAML(typed[k]),
			}
		}

		return value.Mapping(entries...)
	default:
		return value.String(fmt.Sprintf("%v", typed))
	}
}
