package labelkit

import (
	"strings"

	"github.com/randalmurphal/labelkit/pkg/labelkit/expr"
	"github.com/randalmurphal/labelkit/pkg/labelkit/resolve"
)

// renderTokens walks a token sequence and produces output. It is stateless
// beyond the read-only data value, so a template can render concurrently.
//
// Conditional blocks are handled by bracket matching at render time: when an
// if-open token is hit, splitBranches collects the true and false branches
// up to the matching end marker, the condition picks one, and that branch
// renders through a recursive call. Stray {else} or {/if} tokens with no
// open block contribute nothing.
func (e *Engine) renderTokens(tokens []Token, data any) string {
	var out strings.Builder
	i := 0
	for i < len(tokens) {
		switch tok := tokens[i]; tok.Type {
		case TokenText:
			out.WriteString(tok.Text)
			i++
		case TokenVar:
			out.WriteString(e.renderVar(tok, data))
			i++
		case TokenIfStart:
			trueBranch, falseBranch, next := splitBranches(tokens, i+1)
			branch := falseBranch
			if e.eval.Evaluate(tok.Cond, data) {
				branch = trueBranch
			}
			out.WriteString(e.renderTokens(branch, data))
			i = next
		default:
			i++
		}
	}
	return out.String()
}

// renderVar resolves a variable's path and applies its modifier chain left
// to right. An absent value stops the chain and renders as the empty
// string; modifiers never see absent input.
func (e *Engine) renderVar(tok Token, data any) string {
	v, ok := resolve.Lookup(data, tok.Path)
	for _, m := range tok.Mods {
		if !ok {
			break
		}
		v, ok = e.modifiers.Apply(m.Name, m.Args, v)
	}
	if !ok {
		return ""
	}
	return expr.ToString(v)
}

// splitBranches scans forward from the token after an if-open marker and
// separates the block into its true and false branches. The depth counter
// starts at 1; nested if-open tokens increment it and end markers decrement
// it, terminating when it reaches 0. An else marker at depth 1 switches
// accumulation from the true branch to the false branch; at deeper levels it
// is ordinary branch content. Nested blocks are carried verbatim into
// whichever branch they fall in, to be matched again when that branch
// renders.
//
// Returns both branches and the index just past the consumed end marker. A
// block with no end marker extends to the end of the token sequence.
func splitBranches(tokens []Token, start int) (trueBranch, falseBranch []Token, next int) {
	depth := 1
	inElse := false
	for j := start; j < len(tokens); j++ {
		tok := tokens[j]
		switch tok.Type {
		case TokenIfStart:
			depth++
		case TokenIfElse:
			if depth == 1 {
				inElse = true
				continue
			}
		case TokenIfEnd:
			depth--
			if depth == 0 {
				return trueBranch, falseBranch, j + 1
			}
		}
		if inElse {
			falseBranch = append(falseBranch, tok)
		} else {
			trueBranch = append(trueBranch, tok)
		}
	}
	return trueBranch, falseBranch, len(tokens)
}
