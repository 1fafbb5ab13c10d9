package collect

import (
	"iter"
	"maps"
	"strings"
)

// Collector is a non-failing reduction description.
type Collector[T, A, R any] struct {
	Supplier    func() A
	Accumulator func(A, T) A
	Combiner    func(A, A) A
	Finisher    func(A) R
}

// Of builds a collector whose container is its own result.
func Of[T, A any](supplier func() A, accumulator func(A, T) A, combiner func(A, A) A) Collector[T, A, A] {
	return Collector[T, A, A]{
		Supplier:    supplier,
		Accumulator: accumulator,
		Combiner:    combiner,
		Finisher:    func(a A) A { return a },
	}
}

// Over reduces every sequence into its own container, then merges the
// partial containers left to right with the combiner.
func Over[T, A, R any](c Collector[T, A, R], seqs ...iter.Seq[T]) R {
	acc := c.Supplier()
	for i, seq := range seqs {
		part := c.Supplier()
		for v := range seq {
			part = c.Accumulator(part, v)
		}
		if i == 0 {
			acc = part
			continue
		}
		acc = c.Combiner(acc, part)
	}
	return c.Finisher(acc)
}

func ToSlice[T any]() Collector[T, []T, []T] {
	return Of(
		func() []T { return nil },
		func(acc []T, v T) []T { return append(acc, v) },
		func(a, b []T) []T { return append(a, b...) },
	)
}

func ToSet[T comparable]() Collector[T, map[T]struct{}, map[T]struct{}] {
	return Of(
		func() map[T]struct{} { return make(map[T]struct{}) },
		func(acc map[T]struct{}, v T) map[T]struct{} {
			acc[v] = struct{}{}
			return acc
		},
		func(a, b map[T]struct{}) map[T]struct{} {
			maps.Copy(a, b)
			return a
		},
	)
}

// ToMap keys every element; a later element with the same key is merged into
// the earlier value with merge.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(V, V) V) Collector[T, map[K]V, map[K]V] {
	put := func(acc map[K]V, k K, v V) {
		if old, ok := acc[k]; ok {
			v = merge(old, v)
		}
		acc[k] = v
	}
	return Of(
		func() map[K]V { return make(map[K]V) },
		func(acc map[K]V, t T) map[K]V {
			put(acc, key(t), value(t))
			return acc
		},
		func(a, b map[K]V) map[K]V {
			for k, v := range b {
				put(a, k, v)
			}
			return a
		},
	)
}

// GroupingBy groups elements by key, keeping encounter order within a group.
func GroupingBy[T any, K comparable](key func(T) K) Collector[T, map[K][]T, map[K][]T] {
	return ToMap(key,
		func(t T) []T { return []T{t} },
		func(a, b []T) []T { return append(a, b...) })
}

// PartitioningBy splits elements into those satisfying p (true) and the rest.
func PartitioningBy[T any](p func(T) bool) Collector[T, map[bool][]T, map[bool][]T] {
	c := GroupingBy(p)
	supplier := c.Supplier
	c.Supplier = func() map[bool][]T {
		m := supplier()
		m[true], m[false] = []T{}, []T{}
		return m
	}
	return c
}

func Counting[T any]() Collector[T, int, int] {
	return Of(
		func() int { return 0 },
		func(n int, _ T) int { return n + 1 },
		func(a, b int) int { return a + b },
	)
}

// Summing adds up the values extracted from every element.
func Summing[T any, N Number](value func(T) N) Collector[T, N, N] {
	return Of(
		func() N { return 0 },
		func(sum N, t T) N { return sum + value(t) },
		func(a, b N) N { return a + b },
	)
}

// Joining concatenates strings with sep in between.
func Joining(sep string) Collector[string, []string, string] {
	c := ToSlice[string]()
	return Collector[string, []string, string]{
		Supplier:    c.Supplier,
		Accumulator: c.Accumulator,
		Combiner:    c.Combiner,
		Finisher:    func(parts []string) string { return strings.Join(parts, sep) },
	}
}

// Number is any integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
