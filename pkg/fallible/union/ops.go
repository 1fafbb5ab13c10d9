package union

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

// lift turns a member constructor into a total wrapper: a nil error, or a nil
// pointer behind it, stays a success and a failure that already is a U is not
// wrapped again.
func lift[U Failure](ctor func(error) U) func(error) U {
	return func(err error) U {
		if !fallible.Failed(err) {
			var none U
			return none
		}
		if u, ok := err.(U); ok {
			return u
		}
		return ctor(err)
	}
}

// Func adapts an error-returning function into a fallible one declaring U.
func Func[A, R any, U Failure](fn func(A) (R, error), ctor func(error) U) fallible.Function[A, R, U] {
	wrap := lift(ctor)
	return func(a A) (R, U) {
		r, err := fn(a)
		return r, wrap(err)
	}
}

func Supplier[R any, U Failure](fn func() (R, error), ctor func(error) U) fallible.Supplier[R, U] {
	wrap := lift(ctor)
	return func() (R, U) {
		r, err := fn()
		return r, wrap(err)
	}
}

func Predicate[T any, U Failure](fn func(T) (bool, error), ctor func(error) U) fallible.Predicate[T, U] {
	wrap := lift(ctor)
	return func(t T) (bool, U) {
		ok, err := fn(t)
		return ok, wrap(err)
	}
}

func Consumer[T any, U Failure](fn func(T) error, ctor func(error) U) fallible.Consumer[T, U] {
	wrap := lift(ctor)
	return func(t T) U {
		return wrap(fn(t))
	}
}

func Comparator[T any, U Failure](fn func(a, b T) (int, error), ctor func(error) U) fallible.Comparator[T, U] {
	wrap := lift(ctor)
	return func(a, b T) (int, U) {
		n, err := fn(a, b)
		return n, wrap(err)
	}
}
