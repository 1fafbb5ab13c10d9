package stream

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/collect"
)

// Collector is a reduction description whose steps may fail with X.
type Collector[T, A, R any, X error] struct {
	Supplier    fallible.Supplier[A, X]
	Accumulator fallible.BiFunction[A, T, A, X]
	Finisher    fallible.Function[A, R, X]
}

// FromCollector adapts a non-failing description. The result never fails.
func FromCollector[X error, T, A, R any](c collect.Collector[T, A, R]) Collector[T, A, R, X] {
	return Collector[T, A, R, X]{
		Supplier:    fallible.FromSupplier[X](c.Supplier),
		Accumulator: fallible.FromBiFunc[X](c.Accumulator),
		Finisher:    fallible.FromFunc[X](c.Finisher),
	}
}

// Collect reduces the stream with a non-failing description.
func Collect[T, A, R any, X error](s *Stream[T, X], c collect.Collector[T, A, R]) (R, X) {
	return CollectFallible(s, FromCollector[X](c))
}

// CollectFallible reduces the stream with a description whose steps may fail.
func CollectFallible[T, A, R any, X error](s *Stream[T, X], c Collector[T, A, R, X]) (R, X) {
	var zero R
	s.check("collect")

	container, x := c.Supplier()
	if fallible.Failed(x) {
		s.state.consumed = true
		return zero, x
	}
	container, x = FoldTo(s, container, c.Accumulator)
	if fallible.Failed(x) {
		return zero, x
	}
	return c.Finisher(container)
}

// CollectInto accumulates every element into the container supplied once.
func CollectInto[T, R any, X error](s *Stream[T, X], supplier fallible.Supplier[R, X],
	accumulator fallible.BiConsumer[R, T, X]) (R, X) {
	return CollectFallible(s, Collector[T, R, R, X]{
		Supplier: supplier,
		Accumulator: func(r R, t T) (R, X) {
			return r, accumulator(r, t)
		},
		Finisher: fallible.Identity[R, X](),
	})
}
