// Package cfgval models loosely-typed configuration values as a tagged
// variant and renders them back as TypeScript object-literal source.
//
// Legacy cypress.json files carry an open set of keys whose values can be
// strings, numbers, booleans, lists, or nested objects. Rather than pass
// an untyped blob around, every value is converted into a Value up front
// so the serializer has a precise contract.
package cfgval

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

// Value is an immutable tagged union of the JSON value kinds.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	m    map[string]Value
}

// NewNull returns the null value.
func NewNull() Value { return Value{kind: Null} }

// NewBool returns a boolean value.
func NewBool(b bool) Value { return Value{kind: Bool, b: b} }

// NewNumber returns a numeric value.
func NewNumber(n float64) Value { return Value{kind: Number, num: n} }

// NewString returns a string value.
func NewString(s string) Value { return Value{kind: String, str: s} }

// NewList returns a list value.
func NewList(items ...Value) Value { return Value{kind: List, list: items} }

// NewMap returns a map value.
func NewMap(m map[string]Value) Value { return Value{kind: Map, m: m} }

// FromJSON converts a value produced by a JSON decoder into a Value.
// Unrecognized Go types map to null.
func FromJSON(v interface{}) Value {
	switch t := v.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(t)
	case float64:
		return NewNumber(t)
	case int:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	case string:
		return NewString(t)
	case []interface{}:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromJSON(item))
		}
		return NewList(items...)
	case map[string]interface{}:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			m[k] = FromJSON(item)
		}
		return NewMap(m)
	default:
		return NewNull()
	}
}

// Kind returns the variant this value holds.
func (v Value) Kind() Kind { return v.kind }

// StringVal returns the string content and whether the value is a string.
func (v Value) StringVal() (string, bool) {
	return v.str, v.kind == String
}

// BoolVal returns the boolean content and whether the value is a boolean.
func (v Value) BoolVal() (bool, bool) {
	return v.b, v.kind == Bool
}

// MapVal returns the map content and whether the value is a map.
func (v Value) MapVal() (map[string]Value, bool) {
	return v.m, v.kind == Map
}

// Truthy reports whether the value is truthy under JavaScript semantics:
// non-empty strings, non-zero numbers, true, and any list or map.
func (v Value) Truthy() bool {
	switch v.kind {
	case Bool:
		return v.b
	case Number:
		return v.num != 0
	case String:
		return v.str != ""
	case List, Map:
		return true
	default:
		return false
	}
}

// SourceText renders the value as a TypeScript expression. Strings are
// single-quoted, map keys are sorted for deterministic output, and keys
// that are not valid identifiers are quoted.
func (v Value) SourceText() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(v.b)
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case String:
		return quote(v.str)
	case List:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			parts = append(parts, item.SourceText())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Map:
		if len(v.m) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(v.m))
		for _, k := range SortedKeys(v.m) {
			parts = append(parts, fmt.Sprintf("%s: %s", Key(k), v.m[k].SourceText()))
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return "null"
	}
}

// MapBody renders the entries of m as object-literal lines without the
// surrounding braces, one "key: value," per line at the given indent.
func MapBody(m map[string]Value, indent string) string {
	var b strings.Builder
	for _, k := range SortedKeys(m) {
		fmt.Fprintf(&b, "%s%s: %s,\n", indent, Key(k), m[k].SourceText())
	}
	return b.String()
}

// SortedKeys returns the keys of m in sorted order.
func SortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Key renders a map key, quoting it unless it is a valid identifier.
func Key(k string) string {
	if identifierRe.MatchString(k) {
		return k
	}
	return quote(k)
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return "'" + s + "'"
}
