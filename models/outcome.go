// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Outcome is the field-level result of a validation pass.
//
// It holds exactly one of two shapes: an invalid outcome that carries no
// value, or a valid outcome that carries the validated value. The value is
// therefore only reachable through [Outcome.Value] when HasError is false.
type Outcome[T any] struct {
	hasError bool
	value    T
}

// Valid returns a no-error outcome carrying v.
func Valid[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Invalid returns an outcome that reports an error and carries no value.
func Invalid[T any]() Outcome[T] {
	return Outcome[T]{hasError: true}
}

// HasError reports whether the validation pass detected an error.
func (o Outcome[T]) HasError() bool {
	return o.hasError
}

// Value returns the validated value and true for a valid outcome.
// For an invalid outcome it returns the zero value and false.
func (o Outcome[T]) Value() (T, bool) {
	if o.hasError {
		var zero T
		return zero, false
	}
	return o.value, true
}
