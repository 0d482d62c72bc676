package labelkit

import (
	"context"
)

// Template is the compiled form of a template string: the raw text paired
// with its token sequence. Templates are immutable once compiled and safe
// for concurrent use. Obtain one from Engine.Compile or the package-level
// Compile; the zero value is not usable.
type Template struct {
	raw    string
	tokens []Token
	engine *Engine
}

// Raw returns the template text this Template was compiled from.
func (t *Template) Raw() string {
	return t.raw
}

// Tokens returns a copy of the compiled token sequence. The tokens share
// their inner slices with the template, so callers must not modify them.
func (t *Template) Tokens() []Token {
	out := make([]Token, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Render produces the template's output for the given data value. It never
// returns an error: unresolved paths render empty, malformed markers render
// literally, and failing modifiers leave their input unchanged.
func (t *Template) Render(data any) string {
	return t.RenderContext(context.Background(), data)
}

// RenderContext is Render with a caller-supplied context for trace span
// parenting. The context does not carry cancellation semantics here;
// rendering is CPU-bound and runs to completion.
func (t *Template) RenderContext(ctx context.Context, data any) string {
	return t.engine.renderCompiled(ctx, t, data, true)
}
