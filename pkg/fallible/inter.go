package fallible

import "time"

type ValueProvider[R any] interface {
	// Value returns the successful value
	Value() R
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for outcomes that hold a value or a declared failure
type WithFailure[R any, X error] interface {
	ValueProvider[R]
	// Failure returns the failure if the operation failed
	Failure() X
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
