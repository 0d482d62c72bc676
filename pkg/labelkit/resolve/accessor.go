package resolve

import (
	"reflect"
	"strings"
)

// indirect unwraps pointers and interfaces until a concrete value remains.
// Returns the zero Value for nil pointers and nil interfaces.
func indirect(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// lookupKey reads a map entry by segment. Only maps with string keys
// support path lookup; a missing key or a non-string key type is absent.
func lookupKey(rv reflect.Value, segment string) (any, bool) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	key := reflect.ValueOf(segment).Convert(rv.Type().Key())
	val := rv.MapIndex(key)
	if !val.IsValid() {
		return nil, false
	}
	return val.Interface(), true
}

// lookupField reads an exported struct field whose name matches the
// segment case-insensitively, so "title" finds the Title field. Unexported
// fields are absent.
func lookupField(rv reflect.Value, segment string) (any, bool) {
	field := rv.FieldByNameFunc(func(name string) bool {
		return strings.EqualFold(name, segment)
	})
	if !field.IsValid() || !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}

// lookupIndex reads a sequence element by numeric segment. Out-of-range
// indexes are absent rather than a panic.
func lookupIndex(rv reflect.Value, segment string) (any, bool) {
	i, ok := parseIndex(segment)
	if !ok || i >= rv.Len() {
		return nil, false
	}
	return rv.Index(i).Interface(), true
}

// isNil reports whether a resolved value is nil in any representation
// that should collapse to absent: untyped nil or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
