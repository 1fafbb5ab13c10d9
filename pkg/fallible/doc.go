// Package fallible contains single-operation abstractions whose invocation may
// fail with a statically declared failure type, and the combinators that
// manipulate that failure channel without losing track of what can escape.
//
// Every operation returns its result together with a value of its failure
// type X. The zero value of X means success; any other value is a failure.
// Use pointer error types or interfaces for X.
//
// Highlights:
// - Supplier/Function/BiFunction/Predicate/Consumer/Comparator/Runnable: the kinds
// - FallbackTo: replace any failure with an always-succeeding alternative
// - OrTry: try a different strategy once, adopting its failure type
// - Rethrow: translate the failure into another declared type
// - AndThen/Compose: ordinary composition with short-circuit on failure
// - From*: lift plain Go funcs, Nothing marks an operation that never fails
// - Result: a tagged success/failure outcome value
package fallible
