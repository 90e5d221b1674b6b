// result is package provides a two-state container holding either a
// success value or a failure value.
//
// Example
//
//	// parse returns a success or a failure result
//	parse := func(s string) result.Result[int, string] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return result.ErrOf[int]("not a number: " + s)
//		}
//		return result.OkOf[string](n)
//	}
//
//	parse("123").
//		IfOk(func(n int) {
//			fmt.Println("got", n)
//		}).
//		IfErr(func(msg string) {
//			fmt.Println("failed:", msg)
//		})
//
//	// single-purpose results use Unit for the slot they don't carry
//	ok := result.Ok(123)      // Result[int, Unit]
//	bad := result.Err("oops") // Result[Unit, string]
//
//	// and widen into a dual-typed result when needed
//	r := result.FromOk[string](ok) // Result[int, string]
//	fmt.Println(r.Unwrap())        // 123
package result

import "fmt"

// Unit is the zero-sized marker type for a payload slot that carries no
// value. A success-only result uses Unit as its error type, a
// failure-only result uses Unit as its ok type.
type Unit struct{}

const (
	okTag  = 0
	errTag = 1
)

// Result holds either an ok payload of type O or an error payload of
// type E. Exactly one payload is active, fixed at construction; nothing
// flips the active variant in place.
//
// The zero value of Result is an ok result holding the zero value of O.
// Use the constructors to build anything else.
type Result[O, E any] struct {
	tag uint8
	ok  O
	err E
}

// Ok returns a success result carrying v. The error slot is [Unit].
func Ok[T any](v T) Result[T, Unit] {
	return Result[T, Unit]{tag: okTag, ok: v}
}

// Err returns a failure result carrying e. The ok slot is [Unit].
func Err[T any](e T) Result[Unit, T] {
	return Result[Unit, T]{tag: errTag, err: e}
}

// OkOf returns a success result carrying v with an explicit error type:
//
//	r := result.OkOf[string](123) // Result[int, string]
func OkOf[E, O any](v O) Result[O, E] {
	return Result[O, E]{tag: okTag, ok: v}
}

// ErrOf returns a failure result carrying e with an explicit ok type:
//
//	r := result.ErrOf[int]("oops") // Result[int, string]
func ErrOf[O, E any](e E) Result[O, E] {
	return Result[O, E]{tag: errTag, err: e}
}

// FromOk copies the payload of a success-only result into the ok slot
// of a dual-typed result. A source in the error state panics with
// [*InvalidStateError], same as [Result.Unwrap].
func FromOk[E, O any](r Result[O, Unit]) Result[O, E] {
	return OkOf[E](r.Unwrap())
}

// FromErr copies the payload of a failure-only result into the error
// slot of a dual-typed result. A source in the ok state panics with
// [*InvalidStateError], same as [Result.UnwrapErr].
func FromErr[O, E any](r Result[Unit, E]) Result[O, E] {
	return ErrOf[O](r.UnwrapErr())
}

// IsOk reports whether the active variant is ok.
func (r Result[O, E]) IsOk() bool {
	return r.tag == okTag
}

// IsErr reports whether the active variant is error.
func (r Result[O, E]) IsErr() bool {
	return r.tag == errTag
}

// Unwrap returns the ok payload.
//
// Panics with [*InvalidStateError] if the active variant is error.
// Check [Result.IsOk] first, or use [Result.UnwrapOr].
func (r Result[O, E]) Unwrap() O {
	if r.tag != okTag {
		panic(&InvalidStateError{Op: "Unwrap"})
	}
	return r.ok
}

// UnwrapErr returns the error payload.
//
// Panics with [*InvalidStateError] if the active variant is ok.
func (r Result[O, E]) UnwrapErr() E {
	if r.tag != errTag {
		panic(&InvalidStateError{Op: "UnwrapErr"})
	}
	return r.err
}

// UnwrapOr returns the ok payload, or def if the active variant is
// error. It never panics.
func (r Result[O, E]) UnwrapOr(def O) O {
	if r.tag == okTag {
		return r.ok
	}
	return def
}

// InvalidStateError is the panic value for an extraction against the
// variant that is not active.
type InvalidStateError struct {
	// Op is the accessor that was misused, "Unwrap" or "UnwrapErr".
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("result: %s called on the inactive variant", e.Op)
}
