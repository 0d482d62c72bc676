package expr

import (
	"regexp"
	"strings"
)

// operators lists the comparison operators in match priority order.
// Two-character operators come first so that "!=" never splits as "=",
// and ">=" never splits as ">". A clause splits at the first occurrence
// of the first operator in this list found anywhere in its text.
var operators = []string{"!=", ">=", "<=", "=", ">", "<", "~", "$", "^"}

// pathPattern matches an unquoted dotted identifier path. The first
// segment starts with a letter or underscore; later segments may be
// all digits (sequence indexes).
var pathPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z0-9_]+)*$`)

// ParseCondition parses the expression text of an if-marker into a
// condition chain.
//
// The chain splits on the literal substrings " and " and " or ", with
// " and " always tried first regardless of which keyword appears first
// in the text. The piece before the split point becomes a single clause
// even if it contains the other keyword; the remainder is scanned again
// the same way. Existing templates rely on this exact splitting order.
//
// ParseCondition never fails: text that fits no comparison shape becomes
// a bare truthy check on whatever path the text names.
func ParseCondition(text string) Condition {
	var clauses []Clause
	rest := text
	for {
		head, joiner, tail, more := splitLogical(rest)
		clause := parseClause(head)
		clause.Joiner = joiner
		clauses = append(clauses, clause)
		if !more {
			return Condition{Clauses: clauses}
		}
		rest = tail
	}
}

// splitLogical cuts the next clause's text off the front of the
// expression, reporting the joiner that connected it.
func splitLogical(s string) (head string, joiner Joiner, tail string, more bool) {
	if parts := strings.SplitN(s, " and ", 2); len(parts) == 2 {
		return parts[0], JoinAnd, parts[1], true
	}
	if parts := strings.SplitN(s, " or ", 2); len(parts) == 2 {
		return parts[0], JoinOr, parts[1], true
	}
	return s, JoinNone, "", false
}

// parseClause parses a single comparison. Operators are tried in priority
// order and the clause splits at the first match; with no operator present
// the whole text is a truthy check on that path.
func parseClause(s string) Clause {
	for _, op := range operators {
		i := strings.Index(s, op)
		if i < 0 {
			continue
		}
		right, isPath := classifyRight(strings.TrimSpace(s[i+len(op):]))
		return Clause{
			Left:        strings.TrimSpace(s[:i]),
			Op:          op,
			Right:       right,
			RightIsPath: isPath,
		}
	}
	return Clause{Left: strings.TrimSpace(s)}
}

// classifyRight decides whether the right-hand side of a comparison is a
// path reference or a literal. Quoted text is always a literal with the
// quotes stripped; unquoted text is a path only if it has identifier-path
// shape, so numbers stay literals.
func classifyRight(s string) (value string, isPath bool) {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1], false
		}
	}
	if pathPattern.MatchString(s) {
		return s, true
	}
	return s, false
}
