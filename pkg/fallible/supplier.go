package fallible

// Supplier produces a value and may fail with X.
type Supplier[R any, X error] func() (R, X)

// Get invokes the supplier exactly once.
func (s Supplier[R, X]) Get() (R, X) {
	return s()
}

// FallbackTo returns a supplier that never fails: when s fails, the failure is
// passed to the observers and discarded, and alt supplies the value instead.
func (s Supplier[R, X]) FallbackTo(alt func() R, observers ...Observer) func() R {
	return Unfailing(OrTry(s, FromSupplier[Nothing](alt), observers...))
}

// OrTry invokes s and, only when it fails, reports the failure and invokes next.
// Exactly one of the two values is returned; if both fail, only next's failure
// propagates.
func OrTry[R any, X, Y error](s Supplier[R, X], next Supplier[R, Y], observers ...Observer) Supplier[R, Y] {
	return func() (R, Y) {
		r, x := s()
		if !Failed(x) {
			var none Y
			return r, none
		}
		notify(x, observers)
		return next()
	}
}

// Rethrow translates a failure of s through mapper. The mapper should keep x
// reachable from its result (errors.Is/As) so the original cause is not lost.
func Rethrow[R any, X, Y error](s Supplier[R, X], mapper func(X) Y) Supplier[R, Y] {
	return func() (R, Y) {
		r, x := s()
		if Failed(x) {
			var zero R
			return zero, mapper(x)
		}
		var none Y
		return r, none
	}
}

// FromSupplier lifts a plain supplier into any declared failure type.
func FromSupplier[X error, R any](fn func() R) Supplier[R, X] {
	return func() (R, X) {
		var none X
		return fn(), none
	}
}

// Unfailing exposes a supplier that cannot fail as a plain Go func.
func Unfailing[R any](s Supplier[R, Nothing]) func() R {
	return func() R {
		r, _ := s()
		return r
	}
}
