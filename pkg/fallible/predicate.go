package fallible

// Predicate tests a value and may fail with X.
type Predicate[T any, X error] func(T) (bool, X)

func (p Predicate[T, X]) Test(t T) (bool, X) {
	return p(t)
}

func (p Predicate[T, X]) At(t T) Supplier[bool, X] {
	return func() (bool, X) {
		return p(t)
	}
}

func (p Predicate[T, X]) FallbackTo(alt func(T) bool, observers ...Observer) func(T) bool {
	next := OrTryPredicate(p, FromPredicate[Nothing](alt), observers...)
	return func(t T) bool {
		ok, _ := next(t)
		return ok
	}
}

// And short-circuits: other is not tested when p is false or fails.
func (p Predicate[T, X]) And(other Predicate[T, X]) Predicate[T, X] {
	return func(t T) (bool, X) {
		ok, x := p(t)
		if Failed(x) || !ok {
			return false, x
		}
		return other(t)
	}
}

// Or short-circuits: other is not tested when p is true or fails.
func (p Predicate[T, X]) Or(other Predicate[T, X]) Predicate[T, X] {
	return func(t T) (bool, X) {
		ok, x := p(t)
		if Failed(x) {
			return false, x
		}
		if ok {
			return true, x
		}
		return other(t)
	}
}

func (p Predicate[T, X]) Negate() Predicate[T, X] {
	return func(t T) (bool, X) {
		ok, x := p(t)
		if Failed(x) {
			return false, x
		}
		return !ok, x
	}
}

func Not[T any, X error](p Predicate[T, X]) Predicate[T, X] {
	return p.Negate()
}

// IsEqual tests whether a value equals target.
func IsEqual[T comparable, X error](target T) Predicate[T, X] {
	return FromPredicate[X](func(t T) bool { return t == target })
}

func OrTryPredicate[T any, X, Y error](p Predicate[T, X], next Predicate[T, Y], observers ...Observer) Predicate[T, Y] {
	return func(t T) (bool, Y) {
		return OrTry(p.At(t), next.At(t), observers...)()
	}
}

func RethrowPredicate[T any, X, Y error](p Predicate[T, X], mapper func(X) Y) Predicate[T, Y] {
	return func(t T) (bool, Y) {
		return Rethrow(p.At(t), mapper)()
	}
}

func FromPredicate[X error, T any](fn func(T) bool) Predicate[T, X] {
	return func(t T) (bool, X) {
		var none X
		return fn(t), none
	}
}

// BiPredicate tests a pair of values and may fail with X.
type BiPredicate[A, B any, X error] func(A, B) (bool, X)

func (p BiPredicate[A, B, X]) Test(a A, b B) (bool, X) {
	return p(a, b)
}

func (p BiPredicate[A, B, X]) And(other BiPredicate[A, B, X]) BiPredicate[A, B, X] {
	return func(a A, b B) (bool, X) {
		ok, x := p(a, b)
		if Failed(x) || !ok {
			return false, x
		}
		return other(a, b)
	}
}

func (p BiPredicate[A, B, X]) Or(other BiPredicate[A, B, X]) BiPredicate[A, B, X] {
	return func(a A, b B) (bool, X) {
		ok, x := p(a, b)
		if Failed(x) {
			return false, x
		}
		if ok {
			return true, x
		}
		return other(a, b)
	}
}

func (p BiPredicate[A, B, X]) Negate() BiPredicate[A, B, X] {
	return func(a A, b B) (bool, X) {
		ok, x := p(a, b)
		if Failed(x) {
			return false, x
		}
		return !ok, x
	}
}
