package stream

import (
	"iter"
	"slices"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/collect"
)

// Number is any integer or floating-point element type.
type Number = collect.Number

// NumberStream is a Stream of numbers with arithmetic terminals. Its stage
// operations keep returning NumberStreams.
type NumberStream[N Number, X error] struct {
	*Stream[N, X]
}

// Statistics summarizes a numeric stream.
type Statistics[N Number] struct {
	Count int
	Sum   N
	Min   N
	Max   N
}

// Average is zero for an empty summary.
func (st Statistics[N]) Average() float64 {
	if st.Count == 0 {
		return 0
	}
	return float64(st.Sum) / float64(st.Count)
}

func OfNumbers[X error, N Number](seq iter.Seq[N]) *NumberStream[N, X] {
	return &NumberStream[N, X]{Of[X](seq)}
}

func Numbers[X error, N Number](values ...N) *NumberStream[N, X] {
	return OfNumbers[X](slices.Values(values))
}

// MapToNumber transforms every element into a number.
func MapToNumber[T any, N Number, X error](s *Stream[T, X], fn fallible.Function[T, N, X]) *NumberStream[N, X] {
	return &NumberStream[N, X]{Map(s, fn)}
}

// FlatMapToNumber splices the numeric stream fn returns for every element.
func FlatMapToNumber[T any, N Number, X error](s *Stream[T, X], fn fallible.Function[T, *NumberStream[N, X], X]) *NumberStream[N, X] {
	return &NumberStream[N, X]{FlatMap(s, fallible.AndThen(fn, fallible.FromFunc[X](unbox[N, X])))}
}

func unbox[N Number, X error](ns *NumberStream[N, X]) *Stream[N, X] {
	if ns == nil {
		return nil
	}
	return ns.Stream
}

func (s *NumberStream[N, X]) Filter(p fallible.Predicate[N, X]) *NumberStream[N, X] {
	return &NumberStream[N, X]{s.Stream.Filter(p)}
}

func (s *NumberStream[N, X]) Peek(action fallible.Consumer[N, X]) *NumberStream[N, X] {
	return &NumberStream[N, X]{s.Stream.Peek(action)}
}

func (s *NumberStream[N, X]) Limit(n int) *NumberStream[N, X] {
	return &NumberStream[N, X]{s.Stream.Limit(n)}
}

func (s *NumberStream[N, X]) Skip(n int) *NumberStream[N, X] {
	return &NumberStream[N, X]{s.Stream.Skip(n)}
}

func (s *NumberStream[N, X]) Sorted() *NumberStream[N, X] {
	return &NumberStream[N, X]{Sorted(s.Stream)}
}

func (s *NumberStream[N, X]) Distinct() *NumberStream[N, X] {
	return &NumberStream[N, X]{Distinct(s.Stream)}
}

// Map transforms every number into another number of the same type.
func (s *NumberStream[N, X]) Map(fn fallible.UnaryOperator[N, X]) *NumberStream[N, X] {
	return &NumberStream[N, X]{Map(s.Stream, fn)}
}

// Boxed drops the numeric specialization.
func (s *NumberStream[N, X]) Boxed() *Stream[N, X] {
	return s.stage("boxed", s.push)
}

func (s *NumberStream[N, X]) Sum() (N, X) {
	return s.Fold(0, func(a, b N) (N, X) {
		var none X
		return a + b, none
	})
}

func (s *NumberStream[N, X]) Min() (N, bool, X) {
	return s.Stream.Min(fallible.NaturalOrder[N, X]())
}

func (s *NumberStream[N, X]) Max() (N, bool, X) {
	return s.Stream.Max(fallible.NaturalOrder[N, X]())
}

// Average is the arithmetic mean; ok is false for an empty stream.
func (s *NumberStream[N, X]) Average() (avg float64, ok bool, x X) {
	st, x := s.Summary()
	if fallible.Failed(x) || st.Count == 0 {
		return 0, false, x
	}
	return st.Average(), true, x
}

func (s *NumberStream[N, X]) Summary() (Statistics[N], X) {
	return FoldTo(s.Stream, Statistics[N]{}, func(st Statistics[N], n N) (Statistics[N], X) {
		if st.Count == 0 || n < st.Min {
			st.Min = n
		}
		if st.Count == 0 || n > st.Max {
			st.Max = n
		}
		st.Count++
		st.Sum += n
		var none X
		return st, none
	})
}
