package validation

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-formstate/models"
)

// Apply runs validators against value in order and returns the message of the
// first one that reports an error, or "" when all of them accept the value.
//
// Validators after the first error are never invoked. An asynchronous result
// is awaited before the next validator starts. An empty list returns ""
// without invoking anything.
//
// A non-nil error means the evaluation could not finish: a validator fault
// (matches ErrValidatorFault), a nil validator (ErrNilValidator), or ctx being
// done while an asynchronous response was outstanding.
func Apply[T any](ctx context.Context, value T, validators ...Validator[T]) (string, error) {
	for i, validator := range validators {
		if validator == nil {
			return "", fmt.Errorf("%w at index %d", ErrNilValidator, i)
		}

		res := validator(ctx, value)
		if !res.IsAsync() {
			if res.response.HasError() {
				return res.response.String(), nil
			}
			continue
		}

		if res.pending == nil {
			continue
		}

		msg, err := res.pending.Await(ctx)
		if err != nil {
			// Only the caller's ctx makes this a cancellation. A validator
			// failing with its own deadline is still a fault.
			if ctx.Err() != nil {
				return "", fmt.Errorf("awaiting validator at index %d: %w", i, err)
			}
			return "", fmt.Errorf("%w at index %d: %w", ErrValidatorFault, i, err)
		}
		if msg.HasError() {
			return msg.String(), nil
		}
	}

	return "", nil
}

// ApplyAsync starts [Apply] on a new goroutine and returns its eventual
// result. The validator list is copied before the call returns.
func ApplyAsync[T any](ctx context.Context, value T, validators ...Validator[T]) *Pending {
	validators = slices.Clone(validators)

	return Go(ctx, func(ctx context.Context) (models.ValidationResponse, error) {
		msg, err := Apply(ctx, value, validators...)
		return models.ValidationResponse(msg), err
	})
}

// Chain is an ordered validator list.
type Chain[T any] []Validator[T]

// NewChain builds a chain from validators in the given order.
func NewChain[T any](validators ...Validator[T]) Chain[T] {
	return Chain[T](validators)
}

// Apply evaluates the chain against value. See [Apply].
func (c Chain[T]) Apply(ctx context.Context, value T) (string, error) {
	return Apply(ctx, value, c...)
}

// ApplyAsync evaluates the chain against value on a new goroutine.
// See [ApplyAsync].
func (c Chain[T]) ApplyAsync(ctx context.Context, value T) *Pending {
	return ApplyAsync(ctx, value, c...)
}
