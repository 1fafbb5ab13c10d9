package stream

import (
	"fmt"
	"iter"

	"github.com/ib-77/fallible/pkg/fallible"
)

func (s *Stream[T, X]) run(op string, emit func(T) (bool, X)) X {
	s.consume(op)
	return s.push(emit)
}

// ForEach hands every element to action and returns the first failure.
func (s *Stream[T, X]) ForEach(action fallible.Consumer[T, X]) X {
	return s.run("forEach", func(t T) (bool, X) {
		return true, action(t)
	})
}

// ForEachOrdered is ForEach; traversal is always in encounter order.
func (s *Stream[T, X]) ForEachOrdered(action fallible.Consumer[T, X]) X {
	return s.ForEach(action)
}

// ToSlice gathers the elements. On failure the partial slice is dropped.
func (s *Stream[T, X]) ToSlice() ([]T, X) {
	var out []T
	x := s.run("toSlice", func(t T) (bool, X) {
		out = append(out, t)
		var none X
		return true, none
	})
	if fallible.Failed(x) {
		return nil, x
	}
	return out, x
}

// Reduce folds the elements with op, using the first element as the seed.
// ok is false for an empty stream.
func (s *Stream[T, X]) Reduce(op fallible.BinaryOperator[T, X]) (result T, ok bool, x X) {
	x = s.run("reduce", func(t T) (bool, X) {
		if !ok {
			result, ok = t, true
			var none X
			return true, none
		}
		var fx X
		result, fx = op(result, t)
		return true, fx
	})
	if fallible.Failed(x) {
		var zero T
		return zero, false, x
	}
	return result, ok, x
}

// Fold folds the elements with op starting from identity.
func (s *Stream[T, X]) Fold(identity T, op fallible.BinaryOperator[T, X]) (T, X) {
	return FoldTo(s, identity, op)
}

// FoldTo folds the elements into a value of a different type.
func FoldTo[T, U any, X error](s *Stream[T, X], identity U, acc fallible.BiFunction[U, T, U, X]) (U, X) {
	result := identity
	x := s.run("reduce", func(t T) (bool, X) {
		var fx X
		result, fx = acc(result, t)
		return true, fx
	})
	if fallible.Failed(x) {
		var zero U
		return zero, x
	}
	return result, x
}

func (s *Stream[T, X]) Min(c fallible.Comparator[T, X]) (T, bool, X) {
	return s.Reduce(fallible.MinBy(c))
}

func (s *Stream[T, X]) Max(c fallible.Comparator[T, X]) (T, bool, X) {
	return s.Reduce(fallible.MaxBy(c))
}

func (s *Stream[T, X]) Count() (int, X) {
	n := 0
	x := s.run("count", func(T) (bool, X) {
		n++
		var none X
		return true, none
	})
	return n, x
}

// AnyMatch stops at the first element satisfying p.
func (s *Stream[T, X]) AnyMatch(p fallible.Predicate[T, X]) (bool, X) {
	return s.match("anyMatch", p)
}

// AllMatch stops at the first element not satisfying p. It is true for an
// empty stream.
func (s *Stream[T, X]) AllMatch(p fallible.Predicate[T, X]) (bool, X) {
	ok, x := s.match("allMatch", p.Negate())
	return !ok && !fallible.Failed(x), x
}

func (s *Stream[T, X]) NoneMatch(p fallible.Predicate[T, X]) (bool, X) {
	ok, x := s.match("noneMatch", p)
	return !ok && !fallible.Failed(x), x
}

func (s *Stream[T, X]) match(op string, p fallible.Predicate[T, X]) (bool, X) {
	found := false
	x := s.run(op, func(t T) (bool, X) {
		ok, x := p(t)
		if !fallible.Failed(x) && ok {
			found = true
			return false, x
		}
		return true, x
	})
	return found && !fallible.Failed(x), x
}

// FindFirst stops the traversal at the first element.
func (s *Stream[T, X]) FindFirst() (T, bool, X) {
	var first T
	found := false
	x := s.run("findFirst", func(t T) (bool, X) {
		first, found = t, true
		var none X
		return false, none
	})
	if fallible.Failed(x) {
		var zero T
		return zero, false, x
	}
	return first, found, x
}

// FindAny is FindFirst; sequential traversal has no cheaper choice.
func (s *Stream[T, X]) FindAny() (T, bool, X) {
	return s.FindFirst()
}

// All consumes the stream and returns a range-over-func view of it. Every
// element comes with a zero X; a failure is yielded once, with a zero T, as the
// last pair. The returned sequence can be ranged over only once.
func (s *Stream[T, X]) All() iter.Seq2[T, X] {
	s.consume("all")
	ran := false
	return func(yield func(T, X) bool) {
		if ran {
			panic(fmt.Errorf("stream: all: %w", ErrConsumed))
		}
		ran = true

		var none X
		stopped := false
		x := s.push(func(t T) (bool, X) {
			stopped = !yield(t, none)
			return !stopped, none
		})
		if fallible.Failed(x) && !stopped {
			var zero T
			yield(zero, x)
		}
	}
}
