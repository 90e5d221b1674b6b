package result

import "reflect"

// IsOkValue reports whether the active variant is ok and its payload
// equals v. Always false when either the ok type or v is [Unit]; a
// unit slot carries no value worth comparing.
//
// Payloads of different dynamic types never compare equal.
func (r Result[O, E]) IsOkValue(v any) bool {
	if isUnit(any(r.ok)) || isUnit(v) {
		return false
	}
	return r.IsOk() && reflect.DeepEqual(any(r.ok), v)
}

// IsErrValue reports whether the active variant is error and its
// payload equals v. Always false when either the error type or v is
// [Unit].
func (r Result[O, E]) IsErrValue(v any) bool {
	if isUnit(any(r.err)) || isUnit(v) {
		return false
	}
	return r.IsErr() && reflect.DeepEqual(any(r.err), v)
}

// Equal reports whether a and b are in the same state with equal
// payloads. The results may be typed independently. A success result
// never equals a failure result, even when the payloads match.
//
// Equality delegates to [Result.IsOkValue] and [Result.IsErrValue], so
// results whose active payload is [Unit] never compare equal either.
func Equal[O1, E1, O2, E2 any](a Result[O1, E1], b Result[O2, E2]) bool {
	return (a.IsOk() && b.IsOkValue(any(a.ok))) ||
		(a.IsErr() && b.IsErrValue(any(a.err)))
}

func isUnit(v any) bool {
	_, ok := v.(Unit)
	return ok
}
