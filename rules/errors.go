package rules

import "errors"

var (
	// ErrUnexpectedStatus is the fault reported by Remote when the endpoint
	// answers with a status that is neither acceptance nor rejection.
	ErrUnexpectedStatus = errors.New("unexpected remote check status")

	// ErrInvalidTag is the fault reported by Tag when the value cannot be
	// checked against the tag.
	ErrInvalidTag = errors.New("invalid validation tag")
)
