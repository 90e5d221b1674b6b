package result

import "fmt"

// IfOk invokes fn with the ok payload when the active variant is ok,
// then returns the result for chaining. A failure result leaves fn
// uninvoked. fn must be a func(O) or a func(); any other signature
// panics with [*CallbackError] whether or not the variant is active.
//
// Panics raised by fn propagate to the caller unchanged.
func (r Result[O, E]) IfOk(fn any) Result[O, E] {
	switch f := fn.(type) {
	case func(O):
		if r.IsOk() {
			f(r.ok)
		}
	case func():
		if r.IsOk() {
			f()
		}
	default:
		panic(&CallbackError{Op: "IfOk", Fn: fn})
	}
	return r
}

// IfErr invokes fn with the error payload when the active variant is
// error, then returns the result for chaining. A success result leaves
// fn uninvoked. fn must be a func(E) or a func(); any other signature
// panics with [*CallbackError] whether or not the variant is active.
//
// Panics raised by fn propagate to the caller unchanged.
func (r Result[O, E]) IfErr(fn any) Result[O, E] {
	switch f := fn.(type) {
	case func(E):
		if r.IsErr() {
			f(r.err)
		}
	case func():
		if r.IsErr() {
			f()
		}
	default:
		panic(&CallbackError{Op: "IfErr", Fn: fn})
	}
	return r
}

// CallbackError is the panic value for a callback whose signature is
// neither func(payload) nor func().
type CallbackError struct {
	// Op is the combinator that rejected the callback, "IfOk" or "IfErr".
	Op string
	// Fn is the rejected callback value.
	Fn any
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("result: %s callback must be func(payload) or func(), got %T", e.Op, e.Fn)
}
