package fallible

import (
	"cmp"
)

// Comparator orders two values (negative, zero, positive) and may fail with X.
type Comparator[T any, X error] func(a, b T) (int, X)

func (c Comparator[T, X]) Compare(a, b T) (int, X) {
	return c(a, b)
}

func (c Comparator[T, X]) FallbackTo(alt func(a, b T) int, observers ...Observer) func(a, b T) int {
	next := OrTryComparator(c, FromComparator[Nothing](alt), observers...)
	return func(a, b T) int {
		n, _ := next(a, b)
		return n
	}
}

func (c Comparator[T, X]) Reversed() Comparator[T, X] {
	return func(a, b T) (int, X) {
		return c(b, a)
	}
}

// ThenComparing breaks ties of c with other.
func (c Comparator[T, X]) ThenComparing(other Comparator[T, X]) Comparator[T, X] {
	return func(a, b T) (int, X) {
		n, x := c(a, b)
		if Failed(x) || n != 0 {
			return n, x
		}
		return other(a, b)
	}
}

// Comparing orders values by an extracted key.
func Comparing[T any, K cmp.Ordered, X error](key Function[T, K, X]) Comparator[T, X] {
	return func(a, b T) (int, X) {
		ka, x := key(a)
		if Failed(x) {
			return 0, x
		}
		kb, x := key(b)
		if Failed(x) {
			return 0, x
		}
		return cmp.Compare(ka, kb), x
	}
}

func NaturalOrder[T cmp.Ordered, X error]() Comparator[T, X] {
	return FromComparator[X](cmp.Compare[T])
}

func OrTryComparator[T any, X, Y error](c Comparator[T, X], next Comparator[T, Y], observers ...Observer) Comparator[T, Y] {
	return func(a, b T) (int, Y) {
		return OrTry(c.at(a, b), next.at(a, b), observers...)()
	}
}

func RethrowComparator[T any, X, Y error](c Comparator[T, X], mapper func(X) Y) Comparator[T, Y] {
	return func(a, b T) (int, Y) {
		return Rethrow(c.at(a, b), mapper)()
	}
}

func (c Comparator[T, X]) at(a, b T) Supplier[int, X] {
	return func() (int, X) {
		return c(a, b)
	}
}

func FromComparator[X error, T any](fn func(a, b T) int) Comparator[T, X] {
	return func(a, b T) (int, X) {
		var none X
		return fn(a, b), none
	}
}
