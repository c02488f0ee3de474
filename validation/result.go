package validation

import (
	"context"

	"github.com/MKhiriev/go-formstate/models"
)

// Result is what a validator returns: either a synchronous response or a
// pending computation that settles to one later.
type Result struct {
	response models.ValidationResponse
	pending  *Pending
	async    bool
}

// Sync wraps a response that is known immediately.
func Sync(resp models.ValidationResponse) Result {
	return Result{response: resp}
}

// Valid is the synchronous no-error result.
func Valid() Result {
	return Sync(models.NoError)
}

// Invalid is a synchronous error result carrying msg.
// An empty msg is treated as no error.
func Invalid(msg string) Result {
	return Sync(models.ValidationResponse(msg))
}

// Async wraps a pending computation. A nil pending counts as no error.
func Async(p *Pending) Result {
	return Result{pending: p, async: true}
}

// IsAsync reports whether the result was produced in asynchronous mode.
func (r Result) IsAsync() bool {
	return r.async
}

// Response returns the synchronous response. It is empty for async results.
func (r Result) Response() models.ValidationResponse {
	return r.response
}

// Pending returns the pending computation of an async result, or nil.
func (r Result) Pending() *Pending {
	return r.pending
}

// Validator checks one value. The context is the one passed to [Apply]; a
// synchronous validator may ignore it.
type Validator[T any] func(ctx context.Context, value T) Result

// Func adapts a plain synchronous check. fn returns an error message, or ""
// when value is acceptable.
func Func[T any](fn func(T) string) Validator[T] {
	return func(_ context.Context, value T) Result {
		return Invalid(fn(value))
	}
}

// AsyncFunc adapts a blocking check into an asynchronous validator. Every
// invocation runs fn on its own goroutine via [Go]; a non-nil error from fn
// is a fault, not a validation error.
func AsyncFunc[T any](fn func(context.Context, T) (string, error)) Validator[T] {
	return func(ctx context.Context, value T) Result {
		return Async(Go(ctx, func(ctx context.Context) (models.ValidationResponse, error) {
			msg, err := fn(ctx, value)
			return models.ValidationResponse(msg), err
		}))
	}
}
