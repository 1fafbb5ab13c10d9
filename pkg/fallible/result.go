package fallible

import (
	"time"

	"github.com/google/uuid"
)

// Result is the tagged outcome of one fallible invocation.
type Result[R any, X error] struct {
	id        uuid.UUID
	createdAt time.Time
	value     R
	failure   X
	isSuccess bool
}

func Success[R any, X error](r R) Result[R, X] {
	return Result[R, X]{
		value:     r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[R any, X error](x X) Result[R, X] {
	return Result[R, X]{
		failure:   x,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Attempt invokes s once and captures its outcome.
func Attempt[R any, X error](s Supplier[R, X]) Result[R, X] {
	r, x := s()
	if Failed(x) {
		return Failure[R](x)
	}
	return Success[R, X](r)
}

// Get turns the result back into an ordinary (value, failure) pair.
func (r Result[R, X]) Get() (R, X) {
	return r.value, r.failure
}

// Supplier replays the captured outcome on every call.
func (r Result[R, X]) Supplier() Supplier[R, X] {
	return r.Get
}

func (r Result[R, X]) Value() R {
	return r.value
}

func (r Result[R, X]) Failure() X {
	return r.failure
}

func (r Result[R, X]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[R, X]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[R, X]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[R, X]) Id() uuid.UUID {
	return r.id
}

// MapResult transforms a successful value; failures pass through.
func MapResult[R, Out any, X error](in Result[R, X], onSuccess func(R) Out) Result[Out, X] {
	if in.IsSuccess() {
		return Success[Out, X](onSuccess(in.Value()))
	}
	return Failure[Out](in.Failure())
}

// ThenResult switches a successful value to the outcome of the next operation.
func ThenResult[R, Out any, X error](in Result[R, X], next Function[R, Out, X]) Result[Out, X] {
	if in.IsSuccess() {
		return Attempt(next.At(in.Value()))
	}
	return Failure[Out](in.Failure())
}

// Fold collapses an outcome into a concrete value.
func Fold[R, Out any, X error](in WithFailure[R, X], onSuccess func(R) Out, onFailure func(X) Out) Out {
	if in.IsSuccess() {
		return onSuccess(in.Value())
	}
	return onFailure(in.Failure())
}
