package modifier

import (
	"fmt"
	"runtime/debug"

	"github.com/randalmurphal/labelkit/pkg/labelkit/registry"
)

// Func transforms a resolved value. The boolean reports presence of the
// result: returning false makes the value absent for the rest of the
// chain, which is how first and last behave on empty input.
// Implementations must not mutate v.
type Func func(v any, args []string) (any, bool)

// PanicError captures a panic recovered from a modifier, including the
// stack at the point of the panic. It is reported through the registry's
// recovery hook; it is never returned to a render caller.
type PanicError struct {
	Name  string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("modifier %q panicked: %v", e.Name, e.Value)
}

// Registry is the named modifier dispatch table. It is safe for
// concurrent use; registration is expected at setup time.
type Registry struct {
	funcs     *registry.Registry[string, Func]
	onRecover func(*PanicError)
}

// Option configures a Registry.
type Option func(*Registry)

// WithRecoveryHook installs a callback invoked whenever Apply recovers a
// panicking modifier. Used to surface recoveries to logs and metrics.
func WithRecoveryHook(fn func(*PanicError)) Option {
	return func(r *Registry) {
		r.onRecover = fn
	}
}

// New creates a registry pre-populated with the built-in modifiers.
func New(opts ...Option) *Registry {
	r := &Registry{funcs: registry.New[string, Func]()}
	r.funcs.RegisterMany(Builtins())
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces a modifier under a name.
func (r *Registry) Register(name string, fn Func) {
	r.funcs.Register(name, fn)
}

// Has reports whether a modifier name is registered.
func (r *Registry) Has(name string) bool {
	return r.funcs.Has(name)
}

// Names returns the registered modifier names in unspecified order.
func (r *Registry) Names() []string {
	return r.funcs.Keys()
}

// Apply runs one modifier over a value. Unknown names leave the value
// untouched, and a panicking modifier is recovered and likewise leaves
// the value untouched, so a template chain can never fail mid-render.
func (r *Registry) Apply(name string, args []string, v any) (result any, ok bool) {
	fn, found := r.funcs.Get(name)
	if !found {
		return v, true
	}

	defer func() {
		if rec := recover(); rec != nil {
			result, ok = v, true
			if r.onRecover != nil {
				r.onRecover(&PanicError{Name: name, Value: rec, Stack: debug.Stack()})
			}
		}
	}()

	return fn(v, args)
}
