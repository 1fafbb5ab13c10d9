package stream

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Filter keeps the elements for which p holds.
func (s *Stream[T, X]) Filter(p fallible.Predicate[T, X]) *Stream[T, X] {
	up := s.push
	return s.stage("filter", func(emit func(T) (bool, X)) X {
		return up(func(t T) (bool, X) {
			ok, x := p(t)
			if fallible.Failed(x) || !ok {
				return true, x
			}
			return emit(t)
		})
	})
}

// Peek hands every element passing through to action.
func (s *Stream[T, X]) Peek(action fallible.Consumer[T, X]) *Stream[T, X] {
	up := s.push
	return s.stage("peek", func(emit func(T) (bool, X)) X {
		return up(func(t T) (bool, X) {
			if x := action(t); fallible.Failed(x) {
				return false, x
			}
			return emit(t)
		})
	})
}

// Limit truncates the stream to at most n elements and stops the upstream
// traversal once n elements went through.
func (s *Stream[T, X]) Limit(n int) *Stream[T, X] {
	if n < 0 {
		panic(fmt.Sprintf("stream: negative limit %d", n))
	}
	up := s.push
	return s.stage("limit", func(emit func(T) (bool, X)) X {
		var none X
		if n == 0 {
			return none
		}
		seen := 0
		return up(func(t T) (bool, X) {
			seen++
			more, x := emit(t)
			return more && seen < n, x
		})
	})
}

// Skip drops the first n elements.
func (s *Stream[T, X]) Skip(n int) *Stream[T, X] {
	if n < 0 {
		panic(fmt.Sprintf("stream: negative skip %d", n))
	}
	up := s.push
	return s.stage("skip", func(emit func(T) (bool, X)) X {
		seen := 0
		return up(func(t T) (bool, X) {
			if seen < n {
				seen++
				var none X
				return true, none
			}
			return emit(t)
		})
	})
}

// SortedFunc buffers the stream and emits it stably sorted by c. The first
// comparator failure aborts the sort; c is not invoked again after it.
func (s *Stream[T, X]) SortedFunc(c fallible.Comparator[T, X]) *Stream[T, X] {
	up := s.push
	return s.stage("sorted", func(emit func(T) (bool, X)) X {
		var none X
		var buf []T
		if x := up(func(t T) (bool, X) {
			buf = append(buf, t)
			return true, none
		}); fallible.Failed(x) {
			return x
		}

		failure := none
		slices.SortStableFunc(buf, func(a, b T) int {
			if fallible.Failed(failure) {
				return 0
			}
			n, x := c(a, b)
			if fallible.Failed(x) {
				failure = x
				return 0
			}
			return n
		})
		if fallible.Failed(failure) {
			return failure
		}

		return drain(buf, emit)
	})
}

// Sorted orders the elements naturally.
func Sorted[T cmp.Ordered, X error](s *Stream[T, X]) *Stream[T, X] {
	return s.SortedFunc(fallible.NaturalOrder[T, X]())
}

// Distinct drops elements equal to one already emitted.
func Distinct[T comparable, X error](s *Stream[T, X]) *Stream[T, X] {
	up := s.push
	return s.stage("distinct", func(emit func(T) (bool, X)) X {
		seen := make(map[T]struct{})
		return up(func(t T) (bool, X) {
			if _, dup := seen[t]; dup {
				var none X
				return true, none
			}
			seen[t] = struct{}{}
			return emit(t)
		})
	})
}

// Map transforms every element with fn.
func Map[T, R any, X error](s *Stream[T, X], fn fallible.Function[T, R, X]) *Stream[R, X] {
	up := s.push
	return derive(s, "map", pusher[R, X](func(emit func(R) (bool, X)) X {
		return up(func(t T) (bool, X) {
			r, x := fn(t)
			if fallible.Failed(x) {
				return false, x
			}
			return emit(r)
		})
	}))
}

// FlatMap replaces every element with the elements of the stream fn returns
// for it. Each nested stream is consumed, spliced in encounter order before the
// outer traversal advances, and closed afterwards. A nil stream counts as empty.
func FlatMap[T, R any, X error](s *Stream[T, X], fn fallible.Function[T, *Stream[R, X], X]) *Stream[R, X] {
	up := s.push
	return derive(s, "flatMap", pusher[R, X](func(emit func(R) (bool, X)) X {
		return up(func(t T) (bool, X) {
			inner, x := fn(t)
			if fallible.Failed(x) || inner == nil {
				return true, x
			}
			return splice(inner, emit)
		})
	}))
}

// Rethrow translates the failures raised anywhere upstream into Y, once, at the
// boundary between the two halves of the chain. Failures raised by stages
// attached after Rethrow are already Ys and pass through untouched.
func Rethrow[T any, X, Y error](s *Stream[T, X], mapper func(X) Y) *Stream[T, Y] {
	up := s.push
	return derive(s, "rethrow", pusher[T, Y](func(emit func(T) (bool, Y)) Y {
		var none X
		var downstream Y
		x := up(func(t T) (bool, X) {
			more, y := emit(t)
			if fallible.Failed(y) {
				downstream = y
				return false, none
			}
			return more, none
		})
		if fallible.Failed(downstream) {
			return downstream
		}
		if fallible.Failed(x) {
			return mapper(x)
		}
		return downstream
	}))
}

func splice[R any, X error](inner *Stream[R, X], emit func(R) (bool, X)) (bool, X) {
	defer inner.Close()
	inner.consume("flatMap")

	stopped := false
	x := inner.push(func(r R) (bool, X) {
		more, x := emit(r)
		stopped = !more
		return more, x
	})
	return !stopped, x
}

func drain[T any, X error](buf []T, emit func(T) (bool, X)) X {
	var none X
	for _, t := range buf {
		more, x := emit(t)
		if fallible.Failed(x) {
			return x
		}
		if !more {
			break
		}
	}
	return none
}
