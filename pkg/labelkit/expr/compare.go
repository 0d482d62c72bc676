package expr

import "strings"

// equal implements the "=" comparison. Values compare by their string
// forms; an absent side equals only another absent side, never the text
// a missing value might stringify to.
func equal(left any, leftOK bool, right any, rightOK bool) bool {
	if !leftOK || !rightOK {
		return leftOK == rightOK
	}
	return ToString(left) == ToString(right)
}

// order implements ">", "<", ">=" and "<=". Both sides compare numerically
// when both can be read as numbers, and an absent side counts as 0 as long
// as the other side is numeric. If a present value on either side has no
// numeric reading, both sides fall back to lexicographic comparison of
// their string forms.
func order(op string, left any, leftOK bool, right any, rightOK bool) bool {
	lf, lnum := orderOperand(left, leftOK)
	rf, rnum := orderOperand(right, rightOK)
	if lnum && rnum {
		return compareFloats(op, lf, rf)
	}
	return compareStrings(op, ToString(left), ToString(right))
}

// orderOperand reads one side of an ordering comparison as a number.
// Absent sides read as 0.
func orderOperand(v any, ok bool) (float64, bool) {
	if !ok {
		return 0, true
	}
	return ToFloat64(v)
}

func compareFloats(op string, l, r float64) bool {
	switch op {
	case ">":
		return l > r
	case "<":
		return l < r
	case ">=":
		return l >= r
	case "<=":
		return l <= r
	}
	return false
}

func compareStrings(op string, l, r string) bool {
	switch op {
	case ">":
		return l > r
	case "<":
		return l < r
	case ">=":
		return l >= r
	case "<=":
		return l <= r
	}
	return false
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// hasPrefixFold reports whether s starts with prefix, ignoring case.
// This backs the "$" operator.
func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// hasSuffixFold reports whether s ends with suffix, ignoring case.
// This backs the "^" operator.
func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix))
}
