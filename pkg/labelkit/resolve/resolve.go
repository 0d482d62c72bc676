// Package resolve navigates dotted paths through loosely-typed data.
//
// A path like "stream.quality.resolution" is walked one segment at a time
// against whatever value the caller supplied: string-keyed maps by key,
// structs by exported field name (case-insensitive), slices and arrays by
// all-digit index. Resolution never panics; any segment that cannot be
// applied to the current value makes the whole path absent.
package resolve

import (
	"reflect"
	"strconv"
	"strings"
)

// Lookup resolves a dotted path against a data value.
//
// The second return value reports presence: false means the path did not
// resolve, which is distinct from resolving to a falsy value such as 0 or
// the empty string. A path that resolves to nil is reported as absent.
//
// Example:
//
//	v, ok := resolve.Lookup(map[string]any{"a": map[string]any{"b": "x"}}, "a.b")
//	// v == "x", ok == true
//
//	_, ok = resolve.Lookup(map[string]any{}, "a.b")
//	// ok == false
func Lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		v, ok := lookupSegment(current, segment)
		if !ok {
			return nil, false
		}
		current = v
	}
	if isNil(current) {
		return nil, false
	}
	return current, true
}

// lookupSegment applies one path segment to a value, dispatching on the
// container kind: key lookup for string-keyed maps, field lookup for
// structs, index lookup for sequences. Values of any other kind cannot be
// descended into.
func lookupSegment(v any, segment string) (any, bool) {
	if v == nil {
		return nil, false
	}

	// Fast path for the common decoded-JSON/YAML shape.
	if m, ok := v.(map[string]any); ok {
		val, ok := m[segment]
		return val, ok
	}

	rv := indirect(v)
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		return lookupKey(rv, segment)
	case reflect.Struct:
		return lookupField(rv, segment)
	case reflect.Slice, reflect.Array:
		if !isDigits(segment) {
			return nil, false
		}
		return lookupIndex(rv, segment)
	default:
		return nil, false
	}
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseIndex converts an all-digit segment to an int index.
func parseIndex(segment string) (int, bool) {
	n, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}
	return n, true
}
