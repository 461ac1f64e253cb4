package skikt

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/skikt/value"

	"github.com/goccy/go-yaml"
)

// ErrPathNotFound is returned when a navigation path names a key that does
// not exist in the merged configuration.
var ErrPathNotFound = errors.New("path not found")

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that extracts a section of a merge Result and
// decodes it into target.
//
// The path parameter navigates the merged tree using colon (:) as the
// separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "" (empty path) decodes the entire merged tree
//
// After decoding, SetDefaults is applied when target implements Defaulter,
// and Validate is called when it implements Validator.
func Provider[T any](target *T, path string) func(*Result) (*T, error) {
	return func(result *Result) (*T, error) {
		section, err := navigate(result.Config, path)
		if err != nil {
			return nil, err
		}

		data, err := yaml.Marshal(toYAML(section))
		if err != nil {
			return nil, fmt.Errorf("encoding section error: %w", err)
		}

		err = yaml.Unmarshal(data, target)
		if err != nil {
			return nil, fmt.Errorf("decoding section error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

func navigate(tree value.Value, path string) (value.Value, error) {
	if path == "" {
		return tree, nil
	}

	current := tree

	for _, segment := range strings.Split(path, ":") {
		next, ok := current.Get(segment)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		current = next
	}

	return current, nil
}

// toYAML converts a value tree back into the decoder's generic types.
// Mappings become yaml.MapSlice so key order survives the round trip.
func toYAML(v value.Value) any {
	switch v.Kind() {
	case value.KindNull:
		return nil
	case value.KindBool:
		b, _ := v.AsBool()

		return b
	case value.KindInt:
		i, _ := v.AsInt()

		return i
	case value.KindFloat:
		f, _ := v.AsFloat()

		return f
	case value.KindString:
		s, _ := v.AsString()

		return s
	case value.KindSequence:
		items := make([]any, 0, v.Len())
		for _, item := range v.Sequence() {
			items = append(items, toYAML(item))
		}

		return items
	case value.KindMapping:
		entries := make(yaml.MapSlice, 0, v.Len())
		for _, entry := range v.Mapping() {
			entries = append(entries, yaml.MapItem{
				Key:   toYAML(entry.Key),
				Value: toYAML(entry.Val),
			})
		}

		return entries
	default:
		return nil
	}
}
