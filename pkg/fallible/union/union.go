package union

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/ib-77/fallible/pkg/fallible"
)

// Failure is implemented by every union failure type.
type Failure interface {
	error
	// Cause returns the member failure, unchanged
	Cause() error
	// Kind returns the discriminant, the member's dynamic type
	Kind() reflect.Type
}

// Base is the default union failure. Custom union types embed *Base, which
// promotes Error, Cause, Kind and Unwrap.
type Base struct {
	cause error
}

// New wraps a member failure. It panics on a nil cause: a union always holds
// exactly one member.
func New(cause error) *Base {
	if cause == nil {
		panic("union: nil cause")
	}
	return &Base{cause: cause}
}

func (e *Base) Error() string {
	return e.cause.Error()
}

func (e *Base) Cause() error {
	return e.cause
}

func (e *Base) Unwrap() error {
	return e.cause
}

func (e *Base) Kind() reflect.Type {
	return reflect.TypeOf(e.cause)
}

// MismatchError reports narrowing a union against a type it does not hold.
type MismatchError struct {
	Want reflect.Type
	Got  reflect.Type
	// Union is the failure that was being narrowed
	Union error
}

func (e *MismatchError) Error() string {
	if e.Want == nil {
		return fmt.Sprintf("union: no case for %v", e.Got)
	}
	return fmt.Sprintf("union: holds %v, not %v", e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return e.Union
}

// Is reports whether u holds a member of type E.
func Is[E error](u Failure) bool {
	_, ok := As[E](u)
	return ok
}

// As returns the member when it is an E.
func As[E error](u Failure) (E, bool) {
	var zero E
	if fallible.IsNil(u) {
		return zero, false
	}
	member, ok := u.Cause().(E)
	return member, ok
}

// Narrow returns the member when it is an E, or a *MismatchError.
func Narrow[E error](u Failure) (E, error) {
	if member, ok := As[E](u); ok {
		return member, nil
	}
	var zero E
	return zero, mismatch[E](u)
}

// MustNarrow returns the member when it is an E and panics with a
// *MismatchError otherwise.
func MustNarrow[E error](u Failure) E {
	member, err := Narrow[E](u)
	if err != nil {
		panic(err)
	}
	return member
}

// Case handles a member of one type; it reports whether it applied.
type Case func(member error) bool

// On builds a Case for members of type E.
func On[E error](handle func(E)) Case {
	return func(member error) bool {
		e, ok := member.(E)
		if ok {
			handle(e)
		}
		return ok
	}
}

// Match runs the first case whose type the member has. It returns a
// *MismatchError when no case applies.
func Match(u Failure, cases ...Case) error {
	if fallible.IsNil(u) {
		return errors.New("union: match on nil failure")
	}
	for _, c := range cases {
		if c(u.Cause()) {
			return nil
		}
	}
	return &MismatchError{Got: u.Kind(), Union: u}
}

func mismatch[E error](u Failure) *MismatchError {
	m := &MismatchError{Want: reflect.TypeFor[E]()}
	if !fallible.IsNil(u) {
		m.Got = u.Kind()
		m.Union = u
	}
	return m
}
