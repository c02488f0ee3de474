// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package field

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-formstate/internal/logger"
	"github.com/MKhiriev/go-formstate/internal/utils"
	"github.com/MKhiriev/go-formstate/models"
	"github.com/MKhiriev/go-formstate/validation"
)

var _ Validatable[Values] = (*FormState)(nil)

// Values maps member names to member values.
type Values map[string]any

type member struct {
	name string
	v    Validatable[any]
}

// FormState composes named Validatable members and an optional chain of
// form-level validators that run over all member values.
//
// A FormState is itself Validatable, so forms can be nested.
type FormState struct {
	mu sync.Mutex

	name       string
	members    []member
	validators validation.Chain[Values]

	validating     bool
	formError      string
	lastPass       uint64
	autoValidation bool

	log *logger.Logger
}

// NewFormState creates an empty form. WithAutoValidation is applied to every
// member added later.
func NewFormState(opts ...Option) *FormState {
	o := applyOptions(opts)

	return &FormState{
		name:           o.name,
		autoValidation: o.autoValidation,
		log:            o.log,
	}
}

// Add appends a named member. Members are validated in the order they were
// added.
func (f *FormState) Add(name string, v Validatable[any]) error {
	if name == "" {
		return ErrEmptyMemberName
	}
	if v == nil {
		return fmt.Errorf("%w: %q", ErrNilMember, name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, m := range f.members {
		if m.name == name {
			return fmt.Errorf("%w: %q", ErrDuplicateMember, name)
		}
	}

	if f.autoValidation {
		v.EnableAutoValidation()
	}
	f.members = append(f.members, member{name: name, v: v})
	return nil
}

// Validators replaces the form-level validator chain and returns f for
// chaining. Form validators only run when every member is valid.
func (f *FormState) Validators(validators ...validation.Validator[Values]) *FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.validators = validation.NewChain(slices.Clone(validators)...)
	return f
}

// Member returns the member registered under name.
func (f *FormState) Member(name string) (Validatable[any], bool) {
	for _, m := range f.snapshot() {
		if m.name == name {
			return m.v, true
		}
	}
	return nil, false
}

// Names returns member names in validation order.
func (f *FormState) Names() []string {
	members := f.snapshot()
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.name)
	}
	return names
}

// Value returns the current raw value of every member.
func (f *FormState) Value() Values {
	members := f.snapshot()
	values := make(Values, len(members))
	for _, m := range members {
		values[m.name] = m.v.Value()
	}
	return values
}

// Validating reports whether a form validation pass is in flight.
func (f *FormState) Validating() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validating
}

// FormError returns the message of the form-level validators from the last
// resolved pass, or "".
func (f *FormState) FormError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.formError
}

// HasFormError reports whether the form-level validators found an error.
func (f *FormState) HasFormError() bool {
	return f.FormError() != ""
}

// FieldError returns the error message of the first member that has one.
func (f *FormState) FieldError() string {
	for _, m := range f.snapshot() {
		if m.v.HasError() {
			return m.v.ErrorMessage()
		}
	}
	return ""
}

// HasFieldError reports whether any member has an error.
func (f *FormState) HasFieldError() bool {
	for _, m := range f.snapshot() {
		if m.v.HasError() {
			return true
		}
	}
	return false
}

// HasError reports whether the form or any of its members has an error.
func (f *FormState) HasError() bool {
	return f.HasFormError() || f.HasFieldError()
}

// ErrorMessage returns the form error if there is one, otherwise the first
// member error.
func (f *FormState) ErrorMessage() string {
	if msg := f.FormError(); msg != "" {
		return msg
	}
	return f.FieldError()
}

// EnableAutoValidation enables auto-validation on every member, including
// members added later.
func (f *FormState) EnableAutoValidation() {
	f.mu.Lock()
	f.autoValidation = true
	f.mu.Unlock()

	for _, m := range f.snapshot() {
		m.v.EnableAutoValidation()
	}
}

// SetFormError sets the form-level error directly. An empty msg clears it.
func (f *FormState) SetFormError(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.formError = msg
}

// Validate validates every member in order, then runs the form validators
// over the collected values if all members are valid.
//
// Every member is validated even after one reports an error, so each of them
// shows its own message. A member fault stops the pass and is returned.
func (f *FormState) Validate(ctx context.Context) (models.Outcome[Values], error) {
	f.mu.Lock()
	f.lastPass++
	pass := f.lastPass
	members := slices.Clone(f.members)
	validators := f.validators
	f.validating = true
	f.mu.Unlock()

	l := f.log.With().Str("form", f.name).Str("pass_id", utils.NewPassID()).Logger()
	l.Debug().Int("members", len(members)).Int("validators", len(validators)).Msg("form validation started")

	values := make(Values, len(members))
	invalid := make([]string, 0)
	for _, m := range members {
		o, err := m.v.Validate(ctx)
		if err != nil {
			f.finish(pass, "", false)
			l.Error().Err(err).Str("member", m.name).Msg("form validation fault")
			return models.Invalid[Values](), fmt.Errorf("validate form %q member %q: %w", f.name, m.name, err)
		}

		if v, ok := o.Value(); ok {
			values[m.name] = v
		} else {
			invalid = append(invalid, m.name)
		}
	}

	if len(invalid) > 0 {
		f.finish(pass, "", true)
		l.Debug().Strs("invalid_members", invalid).Msg("form validation resolved")
		return models.Invalid[Values](), nil
	}

	msg, err := validators.Apply(ctx, maps.Clone(values))
	if err != nil {
		f.finish(pass, "", false)
		l.Error().Err(err).Msg("form validation fault")
		return models.Invalid[Values](), fmt.Errorf("validate form %q: %w", f.name, err)
	}

	f.finish(pass, msg, true)
	l.Debug().Str("form_error", msg).Msg("form validation resolved")

	if msg != "" {
		return models.Invalid[Values](), nil
	}
	return models.Valid(values), nil
}

// finish ends pass. The form error is only written when update is set and
// pass is still the latest one.
func (f *FormState) finish(pass uint64, formError string, update bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if pass != f.lastPass {
		return
	}
	f.validating = false
	if update {
		f.formError = formError
	}
}

func (f *FormState) snapshot() []member {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.members)
}

// AsAny returns f as a Validatable[any] so it can be nested in another form.
func (f *FormState) AsAny() Validatable[any] {
	return Erase[Values](f)
}
