package fallible

// Function computes R from A and may fail with X.
type Function[A, R any, X error] func(A) (R, X)

// UnaryOperator is a Function whose input and output types agree.
type UnaryOperator[T any, X error] = Function[T, T, X]

func (f Function[A, R, X]) Apply(a A) (R, X) {
	return f(a)
}

// At binds the argument, giving a supplier that applies f to a when invoked.
func (f Function[A, R, X]) At(a A) Supplier[R, X] {
	return func() (R, X) {
		return f(a)
	}
}

// FallbackTo applies alt to the same argument when f fails.
func (f Function[A, R, X]) FallbackTo(alt func(A) R, observers ...Observer) func(A) R {
	return UnfailingFunc(OrTryFunc(f, FromFunc[Nothing](alt), observers...))
}

func OrTryFunc[A, R any, X, Y error](f Function[A, R, X], next Function[A, R, Y], observers ...Observer) Function[A, R, Y] {
	return func(a A) (R, Y) {
		return OrTry(f.At(a), next.At(a), observers...)()
	}
}

func RethrowFunc[A, R any, X, Y error](f Function[A, R, X], mapper func(X) Y) Function[A, R, Y] {
	return func(a A) (R, Y) {
		return Rethrow(f.At(a), mapper)()
	}
}

// AndThen applies f, then g to its result. A failure of f skips g.
func AndThen[A, B, C any, X error](f Function[A, B, X], g Function[B, C, X]) Function[A, C, X] {
	return func(a A) (C, X) {
		b, x := f(a)
		if Failed(x) {
			var zero C
			return zero, x
		}
		return g(b)
	}
}

// Compose applies before, then f.
func Compose[A, B, C any, X error](f Function[B, C, X], before Function[A, B, X]) Function[A, C, X] {
	return AndThen(before, f)
}

// Identity returns its argument and never fails.
func Identity[T any, X error]() UnaryOperator[T, X] {
	return func(t T) (T, X) {
		var none X
		return t, none
	}
}

func FromFunc[X error, A, R any](fn func(A) R) Function[A, R, X] {
	return func(a A) (R, X) {
		var none X
		return fn(a), none
	}
}

func UnfailingFunc[A, R any](f Function[A, R, Nothing]) func(A) R {
	return func(a A) R {
		r, _ := f(a)
		return r
	}
}
