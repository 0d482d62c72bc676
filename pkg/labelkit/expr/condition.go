package expr

// Joiner links a clause to the clause that follows it in a chain.
type Joiner int

const (
	// JoinNone marks the final clause of a chain.
	JoinNone Joiner = iota

	// JoinAnd combines a clause with the next one via logical AND.
	JoinAnd

	// JoinOr combines a clause with the next one via logical OR.
	JoinOr
)

// String returns the keyword form of the joiner.
func (j Joiner) String() string {
	switch j {
	case JoinAnd:
		return "and"
	case JoinOr:
		return "or"
	default:
		return ""
	}
}

// Clause is a single comparison inside a condition chain.
//
// Left is always a dotted path resolved against the render data. Op is one
// of the comparison operators, or empty for a bare truthy check. Right is
// either a literal string (quotes already stripped) or, when RightIsPath
// is set, a second dotted path. Joiner connects this clause to the next
// clause in the chain; the final clause carries JoinNone.
type Clause struct {
	Left        string
	Op          string
	Right       string
	RightIsPath bool
	Joiner      Joiner
}

// Condition is a parsed boolean expression: an ordered list of clauses
// combined strictly left to right, with no precedence between joiners.
type Condition struct {
	Clauses []Clause
}
