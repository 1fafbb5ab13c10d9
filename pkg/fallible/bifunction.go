package fallible

// BiFunction computes R from A and B and may fail with X.
type BiFunction[A, B, R any, X error] func(A, B) (R, X)

// BinaryOperator combines two values of the same type.
type BinaryOperator[T any, X error] = BiFunction[T, T, T, X]

func (f BiFunction[A, B, R, X]) Apply(a A, b B) (R, X) {
	return f(a, b)
}

func (f BiFunction[A, B, R, X]) At(a A, b B) Supplier[R, X] {
	return func() (R, X) {
		return f(a, b)
	}
}

func (f BiFunction[A, B, R, X]) FallbackTo(alt func(A, B) R, observers ...Observer) func(A, B) R {
	next := OrTryBiFunc(f, FromBiFunc[Nothing](alt), observers...)
	return func(a A, b B) R {
		r, _ := next(a, b)
		return r
	}
}

func OrTryBiFunc[A, B, R any, X, Y error](f BiFunction[A, B, R, X], next BiFunction[A, B, R, Y],
	observers ...Observer) BiFunction[A, B, R, Y] {
	return func(a A, b B) (R, Y) {
		return OrTry(f.At(a, b), next.At(a, b), observers...)()
	}
}

func RethrowBiFunc[A, B, R any, X, Y error](f BiFunction[A, B, R, X], mapper func(X) Y) BiFunction[A, B, R, Y] {
	return func(a A, b B) (R, Y) {
		return Rethrow(f.At(a, b), mapper)()
	}
}

// BiAndThen applies f, then after to its result.
func BiAndThen[A, B, R, V any, X error](f BiFunction[A, B, R, X], after Function[R, V, X]) BiFunction[A, B, V, X] {
	return func(a A, b B) (V, X) {
		r, x := f(a, b)
		if Failed(x) {
			var zero V
			return zero, x
		}
		return after(r)
	}
}

// MinBy returns the lesser of two values according to c; ties keep the first.
func MinBy[T any, X error](c Comparator[T, X]) BinaryOperator[T, X] {
	return func(a, b T) (T, X) {
		n, x := c(a, b)
		if Failed(x) {
			var zero T
			return zero, x
		}
		if n <= 0 {
			return a, x
		}
		return b, x
	}
}

// MaxBy returns the greater of two values according to c; ties keep the first.
func MaxBy[T any, X error](c Comparator[T, X]) BinaryOperator[T, X] {
	return func(a, b T) (T, X) {
		n, x := c(a, b)
		if Failed(x) {
			var zero T
			return zero, x
		}
		if n >= 0 {
			return a, x
		}
		return b, x
	}
}

func FromBiFunc[X error, A, B, R any](fn func(A, B) R) BiFunction[A, B, R, X] {
	return func(a A, b B) (R, X) {
		var none X
		return fn(a, b), none
	}
}
