// Package chain provides a minimal fluent Chain[T, X] for synchronous
// composition of fallible.Result values.
//
// Every step runs eagerly, unlike a stream stage, and is skipped once the
// chain holds a failure:
// - Start/FromValue/Attempt: create a Chain
// - Then/Map: compose fail-prone or plain functions
// - Validate: fail with a declared failure when a predicate rejects the value
// - RepeatUntil/While: loop a step while a condition holds
// - Or/And: pick among several chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
package chain
