package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindNull is the YAML null value. The zero Value has this kind.
	KindNull Kind = iota
	// KindBool is a boolean scalar.
	KindBool
	// KindInt is an integer scalar.
	KindInt
	// KindFloat is a floating-point scalar.
	KindFloat
	// KindString is a string scalar.
	KindString
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is an ordered collection of key/value pairs with unique keys.
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a dynamically-typed configuration tree node.
// The zero Value is the null value.
//
// Values are treated as immutable once constructed: operations that combine
// trees build fresh nodes instead of mutating their inputs. Callers must not
// modify the slices returned by Sequence and Mapping.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	m    []Entry
}

// Entry is a single key/value pair of a mapping.
type Entry struct {
	Key Value
	Val Value
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean scalar value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer scalar value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating-point scalar value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string scalar value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Sequence returns a sequence value holding the given items in order.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, seq: items}
}

// Mapping returns a mapping value holding the given entries in order.
// Keys are expected to be unique; callers building mappings from parsed
// documents rely on the parser rejecting duplicates.
func Mapping(entries ...Entry) Value {
	return Value{kind: KindMapping, m: entries}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload. The second return is false when the
// value is not a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer payload. The second return is false when the
// value is not an integer.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the floating-point payload. Integer values are widened so
// numeric consumers can treat both numeric kinds uniformly. The second
// return is false for non-numeric values.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string payload. The second return is false when the
// value is not a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// Sequence returns the items of a sequence value, or nil for other kinds.
func (v Value) Sequence() []Value {
	if v.kind != KindSequence {
		return nil
	}

	return v.seq
}

// Mapping returns the entries of a mapping value, or nil for other kinds.
func (v Value) Mapping() []Entry {
	if v.kind != KindMapping {
		return nil
	}

	return v.m
}

// Len returns the number of items in a sequence or entries in a mapping,
// and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.seq)
	case KindMapping:
		return len(v.m)
	default:
		return 0
	}
}

// Get looks up a string key in a mapping value. The second return is false
// when the value is not a mapping or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}

	for _, entry := range v.m {
		if s, ok := entry.Key.AsString(); ok && s == key {
			return entry.Val, true
		}
	}

	return Value{}, false
}

// Equal reports structural equality. Sequences and mappings compare
// element-wise in order; mappings are ordered collections, so two mappings
// with the same entries in a different order are not equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindSequence:
		if len(v.seq) != len(other.seq) {
			return false
		}

		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}

		return true
	case KindMapping:
		if len(v.m) != len(other.m) {
			return false
		}

		for i := range v.m {
			if !v.m[i].Key.Equal(other.m[i].Key) || !v.m[i].Val.Equal(other.m[i].Val) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Interface converts the value into native Go containers and scalars:
// nil, bool, int64, float64, string, []any, and map[string]any. Mapping
// keys that are not strings are rendered with their textual form, since Go
// maps cannot hold arbitrary tree-valued keys. Mapping insertion order is
// not representable in a Go map; order-sensitive consumers should walk
// Mapping entries directly.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSequence:
		items := make([]any, len(v.seq))
		for i, item := range v.seq {
			items[i] = item.Interface()
		}

		return items
	case KindMapping:
		result := make(map[string]any, len(v.m))
		for _, entry := range v.m {
			result[entry.Key.text()] = entry.Val.Interface()
		}

		return result
	default:
		return nil
	}
}

// text renders a scalar key for use as a Go map key.
func (v Value) text() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// GoString implements fmt.GoStringer so failed test assertions print a
// readable tree form.
func (v Value) GoString() string {
	var sb strings.Builder

	v.write(&sb)

	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindSequence:
		sb.WriteByte('[')

		for i, item := range v.seq {
			if i > 0 {
				sb.WriteString(", ")
			}

			item.write(sb)
		}

		sb.WriteByte(']')
	case KindMapping:
		sb.WriteByte('{')

		for i, entry := range v.m {
			if i > 0 {
				sb.WriteString(", ")
			}

			entry.Key.write(sb)
			sb.WriteString(": ")
			entry.Val.write(sb)
		}

		sb.WriteByte('}')
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	default:
		sb.WriteString(v.text())
	}
}
