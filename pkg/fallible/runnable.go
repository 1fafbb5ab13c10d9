package fallible

// Runnable performs a side effect and may fail with X.
type Runnable[X error] func() X

func (r Runnable[X]) Run() X {
	return r()
}

// FallbackTo runs alt instead of r when r fails.
func (r Runnable[X]) FallbackTo(alt func(), observers ...Observer) func() {
	return func() {
		r.supplier().FallbackTo(func() struct{} {
			alt()
			return struct{}{}
		}, observers...)()
	}
}

func (r Runnable[X]) supplier() Supplier[struct{}, X] {
	return func() (struct{}, X) {
		return struct{}{}, r()
	}
}

func OrTryRunnable[X, Y error](r Runnable[X], next Runnable[Y], observers ...Observer) Runnable[Y] {
	return func() Y {
		_, y := OrTry(r.supplier(), next.supplier(), observers...)()
		return y
	}
}

func RethrowRunnable[X, Y error](r Runnable[X], mapper func(X) Y) Runnable[Y] {
	return func() Y {
		_, y := Rethrow(r.supplier(), mapper)()
		return y
	}
}

func FromRunnable[X error](fn func()) Runnable[X] {
	return func() X {
		fn()
		var none X
		return none
	}
}
