package modifier

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/randalmurphal/labelkit/pkg/labelkit/expr"
)

// byteUnits are the size units Bytes steps through, 1024 at a time.
var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Builtins returns the built-in modifier table. The map is freshly
// allocated on each call.
func Builtins() map[string]Func {
	return map[string]Func{
		"bytes":    Bytes,
		"time":     Time,
		"upper":    Upper,
		"lower":    Lower,
		"title":    Title,
		"join":     Join,
		"first":    First,
		"last":     Last,
		"truncate": Truncate,
		"replace":  Replace,
	}
}

// Bytes formats a numeric byte count as a human-readable size, dividing
// by 1024 until the value drops under 1024 or the units run out. Whole
// bytes print without decimals; every larger unit prints two.
//
//	1536  -> "1.50 KB"
//	100   -> "100 B"
func Bytes(v any, args []string) (any, bool) {
	f, ok := expr.ToFloat64(v)
	if !ok {
		return v, true
	}
	i := 0
	for f >= 1024 && i < len(byteUnits)-1 {
		f /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d B", int64(f)), true
	}
	return fmt.Sprintf("%.2f %s", f, byteUnits[i]), true
}

// Time formats a second count as a clock duration: MM:SS under an hour,
// HH:MM:SS from an hour up, fields zero-padded to two digits.
func Time(v any, args []string) (any, bool) {
	f, ok := expr.ToFloat64(v)
	if !ok {
		return v, true
	}
	secs := int64(f)
	m, s := (secs%3600)/60, secs%60
	if secs < 3600 {
		return fmt.Sprintf("%02d:%02d", m, s), true
	}
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, m, s), true
}

// Upper upper-cases the value's string form.
func Upper(v any, args []string) (any, bool) {
	return strings.ToUpper(expr.ToString(v)), true
}

// Lower lower-cases the value's string form.
func Lower(v any, args []string) (any, bool) {
	return strings.ToLower(expr.ToString(v)), true
}

// Title upper-cases the first letter of every word and lower-cases the
// rest, where a word is any unbroken run of letters.
func Title(v any, args []string) (any, bool) {
	s := expr.ToString(v)
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			inWord = false
		case inWord:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			inWord = true
		}
	}
	return b.String(), true
}

// Join concatenates sequence elements with a separator, stringifying each
// element. The separator defaults to ", ", and an empty first argument
// also means the default, which lets templates write join(, ).
// Non-sequence values pass through untouched.
func Join(v any, args []string) (any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return v, true
	}
	sep := ", "
	if len(args) > 0 && args[0] != "" {
		sep = args[0]
	}
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = expr.ToString(rv.Index(i).Interface())
	}
	return strings.Join(parts, sep), true
}

// First returns the first element of a non-empty sequence; anything else
// becomes absent.
func First(v any, args []string) (any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() == 0 {
		return nil, false
	}
	return rv.Index(0).Interface(), true
}

// Last returns the last element of a non-empty sequence; anything else
// becomes absent.
func Last(v any, args []string) (any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Len() == 0 {
		return nil, false
	}
	return rv.Index(rv.Len() - 1).Interface(), true
}

// Truncate stringifies the value and, when it runs past the limit
// (default 50 characters), keeps the leading limit characters and appends
// "...". A malformed limit argument leaves the value untouched.
func Truncate(v any, args []string) (any, bool) {
	limit := 50
	if len(args) > 0 && args[0] != "" {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return v, true
		}
		limit = n
	}
	s := expr.ToString(v)
	runes := []rune(s)
	if len(runes) <= limit {
		return s, true
	}
	return string(runes[:limit]) + "...", true
}

// Replace substitutes every occurrence of the first argument with the
// second in the value's string form. With fewer than two arguments the
// value passes through untouched.
func Replace(v any, args []string) (any, bool) {
	if len(args) < 2 {
		return v, true
	}
	return strings.ReplaceAll(expr.ToString(v), args[0], args[1]), true
}
