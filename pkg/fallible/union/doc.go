// Package union merges failures of unrelated types into one discriminated
// failure so that a single pipeline or operation can declare all of them.
//
// A union failure holds exactly one member failure. Its discriminant is the
// member's dynamic type. Narrowing against the wrong member type never
// returns a zero value silently: Narrow returns a *MismatchError, MustNarrow
// panics with one, and Match reports one when no case applies.
//
// Custom union types embed *Base and provide a constructor:
//
//	type FetchFailure struct{ *union.Base }
//
//	func NewFetchFailure(err error) *FetchFailure {
//		return &FetchFailure{union.New(err)}
//	}
//
// The constructor's static return type is the union's type; no probing of the
// constructor is needed to learn it.
package union
