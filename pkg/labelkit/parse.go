package labelkit

import (
	"strings"

	"github.com/randalmurphal/labelkit/pkg/labelkit/expr"
)

// parse tokenizes a template string in a single left-to-right scan.
//
// At each '{' the scanner tries, in order: an if-open marker ("{if " up to
// the next '}'), the literal "{else}", the literal "{/if}", and finally the
// variable grammar. If none match, the '{' itself becomes literal text and
// the scan advances one character. That literalize-and-advance rule is the
// only error recovery the lexer has, and it guarantees forward progress on
// any input.
//
// The scanner has no nested-brace awareness: an if condition runs to the
// next '}' regardless of content, and matching {else}/{/if} markers to
// their block is left entirely to the renderer.
func parse(input string) []Token {
	var tokens []Token
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			tokens = append(tokens, Token{Type: TokenText, Text: text.String()})
			text.Reset()
		}
	}

	i := 0
	for i < len(input) {
		if input[i] != '{' {
			next := strings.IndexByte(input[i:], '{')
			if next < 0 {
				text.WriteString(input[i:])
				break
			}
			text.WriteString(input[i : i+next])
			i += next
			continue
		}

		rest := input[i:]
		switch {
		case strings.HasPrefix(rest, "{if "):
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				break
			}
			flush()
			tokens = append(tokens, Token{
				Type: TokenIfStart,
				Cond: expr.ParseCondition(rest[len("{if "):end]),
			})
			i += end + 1
			continue
		case strings.HasPrefix(rest, "{else}"):
			flush()
			tokens = append(tokens, Token{Type: TokenIfElse})
			i += len("{else}")
			continue
		case strings.HasPrefix(rest, "{/if}"):
			flush()
			tokens = append(tokens, Token{Type: TokenIfEnd})
			i += len("{/if}")
			continue
		}

		if tok, width, ok := parseVar(rest); ok {
			flush()
			tokens = append(tokens, tok)
			i += width
			continue
		}

		// Unmatched or malformed marker: the brace is literal text.
		text.WriteByte('{')
		i++
	}
	flush()
	return tokens
}

// parseVar attempts to read a variable marker at the start of s (which
// begins with '{'). The body between the braces must start with a letter or
// underscore; it is split on '|' into a dotted path and a modifier chain.
// Returns the token, the number of bytes consumed, and whether it matched.
func parseVar(s string) (Token, int, bool) {
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return Token{}, 0, false
	}
	body := s[1:end]
	if body == "" || !isPathStart(body[0]) {
		return Token{}, 0, false
	}

	parts := strings.Split(body, "|")
	tok := Token{Type: TokenVar, Path: parts[0]}
	for _, part := range parts[1:] {
		tok.Mods = append(tok.Mods, parseModifierCall(part))
	}
	return tok, end + 1, true
}

// parseModifierCall reads one chain element: "name" or "name(arg,arg)".
// Arguments are split on every comma and trimmed; parentheses do not nest,
// so the first ')' closes the list and anything after it is ignored. A
// missing ')' takes the arguments to the end of the element.
func parseModifierCall(s string) ModifierCall {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return ModifierCall{Name: s}
	}

	argstr := s[open+1:]
	if end := strings.IndexByte(argstr, ')'); end >= 0 {
		argstr = argstr[:end]
	}
	args := strings.Split(argstr, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return ModifierCall{Name: s[:open], Args: args}
}

// isPathStart reports whether c may begin a variable body.
func isPathStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
