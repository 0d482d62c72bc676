package expr

import (
	"github.com/randalmurphal/labelkit/pkg/labelkit/resolve"
)

// LookupFunc resolves a dotted path against render data. The boolean
// reports presence; absent is distinct from falsy.
type LookupFunc func(data any, path string) (any, bool)

// Evaluator evaluates parsed conditions against render data.
// An Evaluator is safe for concurrent use after construction.
type Evaluator struct {
	lookup LookupFunc
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLookup replaces the path resolver used for clause operands.
//
// Default: resolve.Lookup.
func WithLookup(fn LookupFunc) Option {
	return func(e *Evaluator) {
		if fn != nil {
			e.lookup = fn
		}
	}
}

// New creates an Evaluator.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{lookup: resolve.Lookup}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// defaultEvaluator backs the package-level convenience functions.
var defaultEvaluator = New()

// Evaluate runs a condition chain against data using the default evaluator.
func Evaluate(c Condition, data any) bool {
	return defaultEvaluator.Evaluate(c, data)
}

// EvalString parses and evaluates an expression in one step using the
// default evaluator.
func EvalString(text string, data any) bool {
	return defaultEvaluator.EvalString(text, data)
}

// EvalString parses and evaluates an expression in one step.
func (e *Evaluator) EvalString(text string, data any) bool {
	return e.Evaluate(ParseCondition(text), data)
}

// Evaluate folds the clause chain left to right. Every clause's comparison
// is computed before it is combined with the running result: there is no
// short-circuit, and "and"/"or" carry equal precedence. An empty chain is
// false.
func (e *Evaluator) Evaluate(c Condition, data any) bool {
	if len(c.Clauses) == 0 {
		return false
	}
	result := e.evalClause(c.Clauses[0], data)
	for i := 1; i < len(c.Clauses); i++ {
		next := e.evalClause(c.Clauses[i], data)
		switch c.Clauses[i-1].Joiner {
		case JoinAnd:
			result = result && next
		case JoinOr:
			result = result || next
		}
	}
	return result
}

// evalClause evaluates one comparison.
func (e *Evaluator) evalClause(cl Clause, data any) bool {
	left, leftOK := e.lookup(data, cl.Left)
	if cl.Op == "" {
		return leftOK && IsTruthy(left)
	}

	right, rightOK := e.rightOperand(cl, data)
	switch cl.Op {
	case "=":
		return equal(left, leftOK, right, rightOK)
	case "!=":
		return !equal(left, leftOK, right, rightOK)
	case ">", "<", ">=", "<=":
		return order(cl.Op, left, leftOK, right, rightOK)
	case "~":
		return leftOK && containsFold(ToString(left), ToString(right))
	case "$":
		return leftOK && hasPrefixFold(ToString(left), ToString(right))
	case "^":
		return leftOK && hasSuffixFold(ToString(left), ToString(right))
	}
	return false
}

// rightOperand produces the right-hand value of a comparison: a second
// path resolution when the clause names one, else the literal itself.
func (e *Evaluator) rightOperand(cl Clause, data any) (any, bool) {
	if cl.RightIsPath {
		return e.lookup(data, cl.Right)
	}
	return cl.Right, true
}
