package field

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-formstate/internal/logger"
	"github.com/MKhiriev/go-formstate/internal/utils"
	"github.com/MKhiriev/go-formstate/models"
	"github.com/MKhiriev/go-formstate/validation"
)

var _ Validatable[string] = (*FieldState[string])(nil)

// FieldState holds one editable value together with its validator chain and
// the state of its last validation pass.
//
// All methods are safe for concurrent use. When passes overlap, only the most
// recently started one updates the error state.
type FieldState[T any] struct {
	mu sync.Mutex

	name       string
	value      T
	dirty      bool
	validators validation.Chain[T]

	validating     bool
	hasError       bool
	errMsg         string
	autoValidation bool

	// lastPass numbers passes; a pass whose number is no longer the latest
	// resolves without touching state.
	lastPass uint64

	log *logger.Logger
}

// NewFieldState creates a field holding initial, with no validators.
func NewFieldState[T any](initial T, opts ...Option) *FieldState[T] {
	o := applyOptions(opts)

	return &FieldState[T]{
		name:           o.name,
		value:          initial,
		autoValidation: o.autoValidation,
		log:            o.log,
	}
}

// Validators replaces the validator chain and returns f for chaining.
func (f *FieldState[T]) Validators(validators ...validation.Validator[T]) *FieldState[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.validators = validation.NewChain(slices.Clone(validators)...)
	return f
}

// Name returns the field name given with WithName.
func (f *FieldState[T]) Name() string {
	return f.name
}

// Value returns the current raw value.
func (f *FieldState[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Dirty reports whether the value was changed through OnChange since the
// field was created or last reset.
func (f *FieldState[T]) Dirty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty
}

// Validating reports whether a validation pass is in flight.
func (f *FieldState[T]) Validating() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validating
}

// HasError reports whether the last resolved pass found an error.
func (f *FieldState[T]) HasError() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasError
}

// ErrorMessage returns the message of the last resolved pass, or "".
func (f *FieldState[T]) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// AutoValidationEnabled reports whether value changes trigger validation.
func (f *FieldState[T]) AutoValidationEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.autoValidation
}

// EnableAutoValidation makes every later OnChange start a validation pass.
func (f *FieldState[T]) EnableAutoValidation() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoValidation = true
}

// DisableAutoValidation turns auto-validation off again.
func (f *FieldState[T]) DisableAutoValidation() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoValidation = false
}

// OnChange stores a new value.
//
// With auto-validation enabled it starts a validation pass in the background
// and returns a channel that is closed when that pass resolves. Otherwise the
// returned channel is already closed. Faults of background passes are logged.
func (f *FieldState[T]) OnChange(ctx context.Context, value T) <-chan struct{} {
	f.mu.Lock()
	f.value = value
	f.dirty = true
	auto := f.autoValidation
	f.mu.Unlock()

	done := make(chan struct{})
	if !auto {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		_, _ = f.Validate(ctx)
	}()

	return done
}

// SetError sets the error state directly, for errors found outside the
// validator chain (for example, rejected by a server on submit).
// An empty msg clears the error.
func (f *FieldState[T]) SetError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hasError = msg != ""
	f.errMsg = msg
}

// Reset stores value and returns the field to its initial state.
// Passes still in flight resolve without touching the reset state.
func (f *FieldState[T]) Reset(value T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastPass++
	f.value = value
	f.dirty = false
	f.validating = false
	f.hasError = false
	f.errMsg = ""
	f.autoValidation = false
}

// Validate runs the validator chain against a snapshot of the current value.
//
// While it runs, Validating reports true. When it resolves, HasError and
// ErrorMessage are updated together, unless a newer pass has started in the
// meantime. The returned outcome always reflects this pass. A fault leaves
// the error state unchanged and is returned wrapped.
func (f *FieldState[T]) Validate(ctx context.Context) (models.Outcome[T], error) {
	f.mu.Lock()
	f.lastPass++
	pass := f.lastPass
	value := f.value
	validators := f.validators
	f.validating = true
	f.mu.Unlock()

	l := f.log.With().Str("field", f.name).Str("pass_id", utils.NewPassID()).Logger()
	l.Debug().Int("validators", len(validators)).Msg("validation started")

	msg, err := validators.Apply(ctx, value)

	f.mu.Lock()
	defer f.mu.Unlock()

	latest := pass == f.lastPass
	if latest {
		f.validating = false
	}

	if err != nil {
		l.Error().Err(err).Msg("validation fault")
		return models.Invalid[T](), fmt.Errorf("validate field %q: %w", f.name, err)
	}

	if latest {
		f.hasError = msg != ""
		f.errMsg = msg
	} else {
		l.Debug().Msg("validation result discarded, newer pass started")
	}

	l.Debug().Bool("has_error", msg != "").Str("error", msg).Msg("validation resolved")

	if msg != "" {
		return models.Invalid[T](), nil
	}
	return models.Valid(value), nil
}

// AsAny returns f as a Validatable[any] so it can be added to a FormState.
func (f *FieldState[T]) AsAny() Validatable[any] {
	return Erase[T](f)
}
