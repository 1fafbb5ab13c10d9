package union

import (
	"iter"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/stream"
)

// Stream is a pipeline whose stages may fail with any error; every failure is
// folded into the union type U.
type Stream[T any, U Failure] struct {
	s    *stream.Stream[T, U]
	ctor func(error) U
}

// Of wraps a sequence into a stream whose failures become *Base.
func Of[T any](seq iter.Seq[T]) *Stream[T, *Base] {
	return OfFunc(seq, New)
}

// OfFunc wraps a sequence into a stream whose failures are built by ctor.
func OfFunc[T any, U Failure](seq iter.Seq[T], ctor func(error) U) *Stream[T, U] {
	return &Stream[T, U]{s: stream.Of[U](seq), ctor: ctor}
}

// From adapts a single-failure stream; its failures become members of U when
// they surface.
func From[T any, X error, U Failure](s *stream.Stream[T, X], ctor func(error) U) *Stream[T, U] {
	wrap := lift(ctor)
	return &Stream[T, U]{
		s:    stream.Rethrow(s, func(x X) U { return wrap(x) }),
		ctor: ctor,
	}
}

// Concat traverses a, then b.
func Concat[T any, U Failure](a, b *Stream[T, U]) *Stream[T, U] {
	return &Stream[T, U]{s: stream.Concat(a.s, b.s), ctor: a.ctor}
}

// Pipeline exposes the underlying stream with its full set of terminals. It
// shares this stream's traversal.
func (s *Stream[T, U]) Pipeline() *stream.Stream[T, U] {
	return s.s
}

func (s *Stream[T, U]) with(next *stream.Stream[T, U]) *Stream[T, U] {
	return &Stream[T, U]{s: next, ctor: s.ctor}
}

func (s *Stream[T, U]) Filter(p func(T) (bool, error)) *Stream[T, U] {
	return s.with(s.s.Filter(Predicate(p, s.ctor)))
}

func (s *Stream[T, U]) Peek(action func(T) error) *Stream[T, U] {
	return s.with(s.s.Peek(Consumer(action, s.ctor)))
}

func (s *Stream[T, U]) Limit(n int) *Stream[T, U] {
	return s.with(s.s.Limit(n))
}

func (s *Stream[T, U]) Skip(n int) *Stream[T, U] {
	return s.with(s.s.Skip(n))
}

func (s *Stream[T, U]) SortedFunc(c func(a, b T) (int, error)) *Stream[T, U] {
	return s.with(s.s.SortedFunc(Comparator(c, s.ctor)))
}

func Distinct[T comparable, U Failure](s *Stream[T, U]) *Stream[T, U] {
	return s.with(stream.Distinct(s.s))
}

func Map[T, R any, U Failure](s *Stream[T, U], fn func(T) (R, error)) *Stream[R, U] {
	return &Stream[R, U]{s: stream.Map(s.s, Func(fn, s.ctor)), ctor: s.ctor}
}

// FlatMap splices the union stream fn returns for every element.
func FlatMap[T, R any, U Failure](s *Stream[T, U], fn func(T) (*Stream[R, U], error)) *Stream[R, U] {
	inner := func(t T) (*stream.Stream[R, U], error) {
		next, err := fn(t)
		if err != nil || next == nil {
			return nil, err
		}
		return next.s, nil
	}
	return &Stream[R, U]{s: stream.FlatMap(s.s, Func(inner, s.ctor)), ctor: s.ctor}
}

func (s *Stream[T, U]) ForEach(action func(T) error) U {
	return s.s.ForEach(Consumer(action, s.ctor))
}

func (s *Stream[T, U]) ToSlice() ([]T, U) {
	return s.s.ToSlice()
}

func (s *Stream[T, U]) Count() (int, U) {
	return s.s.Count()
}

func (s *Stream[T, U]) FindFirst() (T, bool, U) {
	return s.s.FindFirst()
}

// Caught narrows a failure returned by a terminal; ok is false on success.
func Caught[U Failure](u U) (Failure, bool) {
	if !fallible.Failed(u) {
		return nil, false
	}
	return u, true
}
