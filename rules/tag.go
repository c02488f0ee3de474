package rules

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-formstate/validation"
	"github.com/go-playground/validator/v10"
)

var playground = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Tag checks a value against a go-playground/validator tag such as
// "required,email" or "gte=18,lte=130".
//
// When msg is empty the message names the failed tag. A tag that cannot be
// applied (unknown tag, unsupported value) is reported as a fault.
func Tag[T any](tag, msg string) validation.Validator[T] {
	return func(_ context.Context, v T) validation.Result {
		failed, err := checkTag(v, tag)
		if err != nil {
			return fault(err)
		}
		if failed == "" {
			return validation.Valid()
		}
		if msg != "" {
			return validation.Invalid(msg)
		}
		return validation.Invalid(fmt.Sprintf("failed %q check", failed))
	}
}

// checkTag returns the name of the first failed tag, or "" if v passes.
func checkTag(v any, tag string) (failed string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w %q: %v", ErrInvalidTag, tag, r)
		}
	}()

	verr := playground().Var(v, tag)
	if verr == nil {
		return "", nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(verr, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0].Tag(), nil
	}

	return "", fmt.Errorf("%w %q: %w", ErrInvalidTag, tag, verr)
}

// fault turns an internal failure of a synchronous rule into an already
// rejected pending result, so it reaches the caller as a fault.
func fault(err error) validation.Result {
	p := validation.NewPending()
	_ = p.Reject(err)
	return validation.Async(p)
}
