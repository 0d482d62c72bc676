package labelkit

import (
	"github.com/randalmurphal/labelkit/pkg/labelkit/expr"
)

// TokenType identifies the kind of a parsed template token.
type TokenType int

const (
	// TokenText is a literal text run emitted verbatim.
	TokenText TokenType = iota
	// TokenVar is a variable marker: a dotted path plus a modifier chain.
	TokenVar
	// TokenIfStart opens a conditional block and carries its condition.
	TokenIfStart
	// TokenIfElse separates the true and false branches of a block.
	TokenIfElse
	// TokenIfEnd closes a conditional block.
	TokenIfEnd
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "text"
	case TokenVar:
		return "var"
	case TokenIfStart:
		return "if"
	case TokenIfElse:
		return "else"
	case TokenIfEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ModifierCall is one step of a variable's modifier chain: a modifier name
// and its already-split, trimmed argument strings.
type ModifierCall struct {
	Name string
	Args []string
}

// Token is one element of a compiled template. Only the fields relevant to
// its Type are populated: Text for TokenText, Path and Mods for TokenVar,
// Cond for TokenIfStart.
type Token struct {
	Type TokenType
	Text string
	Path string
	Mods []ModifierCall
	Cond expr.Condition
}
