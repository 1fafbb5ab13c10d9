// Package stream provides a lazy, single-use pipeline over an iter.Seq whose
// stages may fail with one declared failure type X.
//
// Stage operations (Filter, Map, FlatMap, Peek, Limit, Skip, Sorted, Distinct,
// Rethrow) only register work. Terminal operations (ForEach, ToSlice, Reduce,
// Collect, Min, Max, Count, AnyMatch, FindFirst, ...) run the whole chain once,
// in encounter order, and return the first failure raised by any stage.
//
// All handles derived from one source share its traversal: after any terminal
// has run, every further operation on any of them panics with an error
// wrapping ErrConsumed.
//
// Traversal is strictly sequential. Short-circuiting terminals and Limit stop
// pulling from the source as soon as the outcome is known.
package stream
