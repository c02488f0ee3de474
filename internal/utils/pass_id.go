package utils

import "github.com/google/uuid"

// NewPassID returns an identifier for one validation pass. It prefers a
// time-ordered UUIDv7 so log entries of consecutive passes sort naturally.
func NewPassID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
