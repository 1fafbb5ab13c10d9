package stream

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/collect"
)

type divideError struct {
	dividend int
}

func (e *divideError) Error() string {
	return fmt.Sprintf("cannot divide %d by zero", e.dividend)
}

type reportError struct {
	stage string
	err   error
}

func (e *reportError) Error() string {
	return e.stage + ": " + e.err.Error()
}

func (e *reportError) Unwrap() error {
	return e.err
}

func tenOver(n int) (int, *divideError) {
	if n == 0 {
		return 0, &divideError{dividend: 10}
	}
	return 10 / n, nil
}

func consumedPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, ErrConsumed)
	}()
	fn()
}

func TestStages_AreLazy(t *testing.T) {
	t.Parallel()

	calls := 0
	count := func() { calls++ }

	s := Values[error](1, 2, 3).
		Filter(func(int) (bool, error) { count(); return true, nil }).
		Peek(func(int) error { count(); return nil })
	mapped := Map(s, func(n int) (string, error) { count(); return fmt.Sprint(n), nil })

	assert.Zero(t, calls)

	out, err := mapped.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, out)
	assert.Equal(t, 9, calls)
}

func TestTerminal_ConsumesStream(t *testing.T) {
	t.Parallel()

	s := Values[error](1, 2, 3)
	doubled := Map(s, func(n int) (int, error) { return n * 2, nil })

	n, err := doubled.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	consumedPanic(t, func() { doubled.Count() })
	consumedPanic(t, func() { s.Filter(func(int) (bool, error) { return true, nil }) })
	consumedPanic(t, func() { Map(s, fallible.Identity[int, error]()) })
	consumedPanic(t, func() { doubled.Limit(1) })
}

func TestStage_AfterStageRegistrationStillUsable(t *testing.T) {
	t.Parallel()

	s := Values[error](1, 2, 3)
	evens := s.Filter(func(n int) (bool, error) { return n%2 == 0, nil })

	out, err := evens.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, out)

	consumedPanic(t, func() { s.ToSlice() })
}

func TestForEach_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	var printed []int
	var processed []int

	src := Values[*divideError](1, 2, 0, 4).
		Peek(func(n int) *divideError { processed = append(processed, n); return nil })
	err := Map(src, tenOver).ForEach(func(n int) *divideError {
		printed = append(printed, n)
		return nil
	})

	require.NotNil(t, err)
	assert.Equal(t, 10, err.dividend)
	assert.Equal(t, []int{10, 5}, printed)
	assert.Equal(t, []int{1, 2, 0}, processed, "4 is never processed")
}

func TestForEach_ZeroStructFailureStops(t *testing.T) {
	t.Parallel()

	var seen []int
	err := Map(Values[error](1, 2, 3), func(n int) (int, error) {
		if n == 2 {
			return 0, context.DeadlineExceeded
		}
		return n, nil
	}).ForEach(func(n int) error {
		seen = append(seen, n)
		return nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, []int{1}, seen)
}

func TestFindFirst_ShortCircuits(t *testing.T) {
	t.Parallel()

	peeked := 0
	first, ok, err := Values[error]("a", "b", "c").
		Peek(func(string) error { peeked++; return nil }).
		FindFirst()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", first)
	assert.Equal(t, 1, peeked)

	_, ok, err = Empty[error, string]().FindAny()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatch_ShortCircuits(t *testing.T) {
	t.Parallel()

	seen := 0
	gt := func(limit int) fallible.Predicate[int, error] {
		return func(n int) (bool, error) {
			seen++
			return n > limit, nil
		}
	}

	ok, err := Values[error](1, 5, 9, 12).AnyMatch(gt(4))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, seen)

	ok, err = Values[error](5, 6, 1, 7).AllMatch(gt(4))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Empty[error, int]().AllMatch(gt(4))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Values[error](1, 2).NoneMatch(gt(4))
	require.NoError(t, err)
	assert.True(t, ok)

	boom := errors.New("boom")
	ok, err = Values[error](1).AnyMatch(func(int) (bool, error) { return true, boom })
	assert.Same(t, boom, err)
	assert.False(t, ok)
}

func TestFlatMap_SplicesInOrderAndClosesInner(t *testing.T) {
	t.Parallel()

	var closed []int
	var trace []string
	nested := FlatMap(Values[error](1, 2, 3), func(n int) (*Stream[string, error], error) {
		if n == 2 {
			return nil, nil
		}
		trace = append(trace, fmt.Sprintf("open %d", n))
		inner := Values[error](fmt.Sprintf("%d.a", n), fmt.Sprintf("%d.b", n)).
			OnClose(func() { closed = append(closed, n) })
		return inner, nil
	})

	out, err := nested.Peek(func(s string) error { trace = append(trace, s); return nil }).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"1.a", "1.b", "3.a", "3.b"}, out)
	assert.Equal(t, []string{"open 1", "1.a", "1.b", "open 3", "3.a", "3.b"}, trace)
	assert.Equal(t, []int{1, 3}, closed)
}

func TestFlatMap_LimitStopsOuterTraversal(t *testing.T) {
	t.Parallel()

	opened := 0
	out, err := FlatMap(Values[error](1, 2, 3), func(n int) (*Stream[int, error], error) {
		opened++
		return Values[error](n, n), nil
	}).Limit(3).ToSlice()

	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2}, out)
	assert.Equal(t, 2, opened)
}

func TestFlatMap_InnerFailurePropagates(t *testing.T) {
	t.Parallel()

	out, err := FlatMap(Values[*divideError](1, 0, 2), func(n int) (*Stream[int, *divideError], *divideError) {
		return Map(Values[*divideError](n), tenOver), nil
	}).ToSlice()

	require.NotNil(t, err)
	assert.Nil(t, out)
}

func TestLimitSkip(t *testing.T) {
	t.Parallel()

	pulled := 0
	src := Values[error](1, 2, 3, 4, 5, 6).Peek(func(int) error { pulled++; return nil })
	out, err := src.Skip(1).Limit(2).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, out)
	assert.Equal(t, 3, pulled)

	none, err := Values[error](1, 2).Peek(func(int) error { pulled++; return nil }).Limit(0).ToSlice()
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Equal(t, 3, pulled)

	assert.Panics(t, func() { Values[error](1).Limit(-1) })
	assert.Panics(t, func() { Values[error](1).Skip(-1) })
}

func TestSortedDistinct(t *testing.T) {
	t.Parallel()

	out, err := Sorted(Distinct(Values[error](3, 1, 3, 2, 1))).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)

	type word struct {
		text  string
		order int
	}
	byLen := fallible.Comparing(fallible.FromFunc[error](func(w word) int { return len(w.text) }))
	words, err := Values[error](word{"ccc", 0}, word{"a", 1}, word{"bb", 2}, word{"d", 3}).
		SortedFunc(byLen).ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []word{{"a", 1}, {"d", 3}, {"bb", 2}, {"ccc", 0}}, words, "stable")
}

func TestSorted_ComparatorFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0
	emitted := false
	_, err := Values[error](3, 2, 1).
		SortedFunc(func(a, b int) (int, error) {
			calls++
			return 0, boom
		}).
		Peek(func(int) error { emitted = true; return nil }).
		ToSlice()

	assert.Same(t, boom, err)
	assert.Equal(t, 1, calls)
	assert.False(t, emitted)
}

func TestReduceFold(t *testing.T) {
	t.Parallel()

	add := fallible.BinaryOperator[int, error](func(a, b int) (int, error) { return a + b, nil })

	sum, ok, err := Values[error](1, 2, 3).Reduce(add)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6, sum)

	_, ok, err = Empty[error, int]().Reduce(add)
	require.NoError(t, err)
	assert.False(t, ok)

	total, err := Values[error](1, 2, 3).Fold(10, add)
	require.NoError(t, err)
	assert.Equal(t, 16, total)

	joined, err := FoldTo(Values[error]("a", "b"), "", func(acc, s string) (string, error) {
		return acc + s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ab", joined)

	lo, _, err := Values[error](4, 1, 3).Min(fallible.NaturalOrder[int, error]())
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, _, err := Values[error](4, 1, 3).Max(fallible.NaturalOrder[int, error]())
	require.NoError(t, err)
	assert.Equal(t, 4, hi)
}

func TestRethrow_TranslatesOnceAtBoundary(t *testing.T) {
	t.Parallel()

	translations := 0
	src := Map(Values[*divideError](5, 0, 1), tenOver)
	translated := Rethrow(src, func(e *divideError) *reportError {
		translations++
		return &reportError{stage: "divide", err: e}
	})

	var got []int
	err := translated.ForEach(func(n int) *reportError { got = append(got, n); return nil })

	require.NotNil(t, err)
	assert.Equal(t, 1, translations)
	assert.Equal(t, []int{2}, got)

	var cause *divideError
	require.ErrorAs(t, err, &cause)
	assert.Equal(t, 10, cause.dividend)
}

func TestRethrow_DownstreamFailureUntouched(t *testing.T) {
	t.Parallel()

	downstream := &reportError{stage: "sink", err: errors.New("full")}
	translated := Rethrow(Values[*divideError](1, 2), func(e *divideError) *reportError {
		t.Fatalf("mapper called for %v", e)
		return nil
	})

	err := translated.ForEach(func(int) *reportError { return downstream })
	assert.Same(t, downstream, err)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	words := []string{"apple", "avocado", "banana", "cherry", "blueberry"}

	joined, err := Collect(Of[error](slices.Values(words)).Limit(3), collect.Joining(","))
	require.NoError(t, err)
	assert.Equal(t, "apple,avocado,banana", joined)

	var seen []string
	out, err := CollectInto(Values[error](words...),
		func() (*[]string, error) { return &seen, nil },
		func(acc *[]string, w string) error {
			*acc = append(*acc, strings.ToUpper(w[:1]))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "B", "C", "B"}, *out)

	boom := errors.New("boom")
	_, err = CollectFallible(Values[error](1, 2), Collector[int, int, int, error]{
		Supplier:    func() (int, error) { return 0, nil },
		Accumulator: func(a, n int) (int, error) { return a + n, nil },
		Finisher:    func(int) (int, error) { return 0, boom },
	})
	assert.Same(t, boom, err)
}

func TestCollect_SupplierFailureConsumes(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := Values[error](1)
	_, err := CollectInto(s,
		func() ([]int, error) { return nil, boom },
		func([]int, int) error { return nil })
	assert.Same(t, boom, err)

	consumedPanic(t, func() { s.Count() })
}

func TestConcat(t *testing.T) {
	t.Parallel()

	closed := 0
	a := Values[error](1, 2).OnClose(func() { closed++ })
	b := Values[error](3).OnClose(func() { closed++ })

	both := Concat(a, b)
	consumedPanic(t, func() { a.Count() })

	out, err := both.ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)

	both.Close()
	both.Close()
	assert.Equal(t, 2, closed)

	first, _, err := Concat(Values[error](7), Values[error](8)).FindFirst()
	require.NoError(t, err)
	assert.Equal(t, 7, first)
}

func TestOnClose_RunsInOrderOnce(t *testing.T) {
	t.Parallel()

	var order []string
	s := Values[error](1).
		OnClose(func() { order = append(order, "first") }).
		OnClose(func() { order = append(order, "second") })

	s.Close()
	s.Close()
	assert.Equal(t, []string{"first", "second"}, order)
	consumedPanic(t, func() { s.Count() })
}

func TestUnfailing(t *testing.T) {
	t.Parallel()

	seq := Unfailing(Map(Values[fallible.Nothing](1, 2, 3),
		fallible.FromFunc[fallible.Nothing](func(n int) int { return n * n })))

	assert.Equal(t, []int{1, 4, 9}, slices.Collect(seq))
	consumedPanic(t, func() { _ = slices.Collect(seq) })
}

func TestAll(t *testing.T) {
	t.Parallel()

	var got []int
	var failure *divideError
	for n, err := range Map(Values[*divideError](1, 2, 0, 5), tenOver).All() {
		if err != nil {
			failure = err
			break
		}
		got = append(got, n)
	}
	assert.Equal(t, []int{10, 5}, got)
	require.NotNil(t, failure)

	seq := Values[error](1, 2, 3).All()
	for n := range seq {
		if n == 2 {
			break
		}
	}
	consumedPanic(t, func() {
		for range seq {
		}
	})
}
