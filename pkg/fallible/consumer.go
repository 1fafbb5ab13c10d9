package fallible

// Consumer accepts a value for its side effect and may fail with X.
type Consumer[T any, X error] func(T) X

func (c Consumer[T, X]) Accept(t T) X {
	return c(t)
}

func (c Consumer[T, X]) At(t T) Runnable[X] {
	return func() X {
		return c(t)
	}
}

func (c Consumer[T, X]) FallbackTo(alt func(T), observers ...Observer) func(T) {
	return func(t T) {
		c.At(t).FallbackTo(func() { alt(t) }, observers...)()
	}
}

// AndThen accepts t with c, then with after. A failure of c skips after.
func (c Consumer[T, X]) AndThen(after Consumer[T, X]) Consumer[T, X] {
	return func(t T) X {
		if x := c(t); Failed(x) {
			return x
		}
		return after(t)
	}
}

func OrTryConsumer[T any, X, Y error](c Consumer[T, X], next Consumer[T, Y], observers ...Observer) Consumer[T, Y] {
	return func(t T) Y {
		return OrTryRunnable(c.At(t), next.At(t), observers...)()
	}
}

func RethrowConsumer[T any, X, Y error](c Consumer[T, X], mapper func(X) Y) Consumer[T, Y] {
	return func(t T) Y {
		return RethrowRunnable(c.At(t), mapper)()
	}
}

func FromConsumer[X error, T any](fn func(T)) Consumer[T, X] {
	return func(t T) X {
		fn(t)
		var none X
		return none
	}
}

// BiConsumer accepts a pair of values and may fail with X.
type BiConsumer[A, B any, X error] func(A, B) X

func (c BiConsumer[A, B, X]) Accept(a A, b B) X {
	return c(a, b)
}

func (c BiConsumer[A, B, X]) FallbackTo(alt func(A, B), observers ...Observer) func(A, B) {
	return func(a A, b B) {
		Runnable[X](func() X { return c(a, b) }).FallbackTo(func() { alt(a, b) }, observers...)()
	}
}

func (c BiConsumer[A, B, X]) AndThen(after BiConsumer[A, B, X]) BiConsumer[A, B, X] {
	return func(a A, b B) X {
		if x := c(a, b); Failed(x) {
			return x
		}
		return after(a, b)
	}
}

func FromBiConsumer[X error, A, B any](fn func(A, B)) BiConsumer[A, B, X] {
	return func(a A, b B) X {
		fn(a, b)
		var none X
		return none
	}
}
