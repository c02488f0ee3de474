package field

import (
	"context"

	"github.com/MKhiriev/go-formstate/models"
)

// Erase adapts a Validatable of any value type to Validatable[any], which is
// what a FormState holds. A nil v yields nil.
func Erase[T any](v Validatable[T]) Validatable[any] {
	if v == nil {
		return nil
	}
	if same, ok := any(v).(Validatable[any]); ok {
		return same
	}
	return erased[T]{inner: v}
}

type erased[T any] struct {
	inner Validatable[T]
}

func (e erased[T]) Validating() bool { return e.inner.Validating() }
func (e erased[T]) HasError() bool { return e.inner.HasError() }
func (e erased[T]) ErrorMessage() string { return e.inner.ErrorMessage() }
func (e erased[T]) Value() any { return e.inner.Value() }
func (e erased[T]) EnableAutoValidation() { e.inner.EnableAutoValidation() }

func (e erased[T]) Validate(ctx context.Context) (models.Outcome[any], error) {
	o, err := e.inner.Validate(ctx)
	if err != nil || o.HasError() {
		return models.Invalid[any](), err
	}

	v, _ := o.Value()
	return models.Valid[any](v), nil
}
