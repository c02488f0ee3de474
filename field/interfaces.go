package field

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/validatable_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-formstate/models"
)

// Validatable is implemented by anything that can be composed into the
// validation system: single fields, forms, and nested forms.
type Validatable[T any] interface {
	// Validating reports whether a validation pass is in flight.
	Validating() bool

	// HasError reports whether the last resolved pass found an error.
	HasError() bool

	// ErrorMessage returns the error of the last resolved pass. It is
	// non-empty exactly when HasError is true.
	ErrorMessage() string

	// Value returns the current raw value.
	Value() T

	// Validate runs a validation pass and updates the error state when it
	// resolves. A non-nil error reports a validator fault.
	Validate(ctx context.Context) (models.Outcome[T], error)

	// EnableAutoValidation makes subsequent value changes trigger validation.
	EnableAutoValidation()
}
