package validation

import "errors"

var (
	// ErrValidatorFault marks a validator that failed internally instead of
	// producing a response. It wraps the underlying cause.
	ErrValidatorFault = errors.New("validator fault")

	// ErrNilValidator is returned when the validator list contains a nil entry.
	ErrNilValidator = errors.New("nil validator")

	// ErrValidatorPanic is the cause recorded when an asynchronous validator
	// panics on its goroutine.
	ErrValidatorPanic = errors.New("validator panicked")

	// ErrAlreadySettled is returned by Resolve and Reject on a pending
	// computation that has already settled.
	ErrAlreadySettled = errors.New("pending validation already settled")
)
