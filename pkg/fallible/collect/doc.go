// Package collect describes non-failing reductions of a sequence into a single
// value: a supplier of a fresh container, an accumulator folding one element
// into it, a combiner merging two partial containers and a finisher.
//
// The same descriptions are accepted by stream.Collect, which treats them as
// operations that never fail.
package collect
