// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-formstate/field"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const labelWidth = 10

// SignupModel is the Bubble Tea model of the signup screen. Each text input
// is backed by a FieldState; the screen only renders their state and turns
// key presses into validation passes.
//
// Tab leaves a field and enables auto-validation on it, so later edits of
// that field are checked while typing. Enter validates the whole form and,
// when it is valid, quits with the accepted values.
type SignupModel struct {
	ctx          context.Context
	timeout      time.Duration
	autoValidate bool

	form   *signupForm
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
	accepted   field.Values
}

// newSignupModel creates the screen around form. Every pass gets timeout;
// zero means no timeout.
func newSignupModel(ctx context.Context, form *signupForm, timeout time.Duration, autoValidate bool) *SignupModel {
	inputs := make([]textinput.Model, len(form.fields))
	for i, f := range form.fields {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(form.labels[i])
		inputs[i].Width = 40
		if f.Name() == fieldPassword || f.Name() == fieldConfirm {
			inputs[i].EchoMode = textinput.EchoPassword
			inputs[i].EchoCharacter = '*'
		}
	}
	inputs[0].Focus()

	return &SignupModel{
		ctx:          ctx,
		timeout:      timeout,
		autoValidate: autoValidate,
		form:         form,
		inputs:       inputs,
	}
}

// Init implements [tea.Model].
func (m *SignupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [fieldValidatedMsg] shows a fault of a field pass, if any;
//   - [formValidatedMsg] finishes a submit: faults and form errors go to the
//     status line, a valid form quits the program;
//   - tab / shift+tab leave the field, enable auto-validation on it and
//     validate it;
//   - enter validates the whole form;
//   - esc resets the form.
//
// All other messages go to the focused input; a changed value is passed to
// its FieldState.
func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fieldValidatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeFault(msg.err)
		}
		return m, nil

	case formValidatedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeFault(msg.err)
			return m, nil
		}
		values, ok := msg.outcome.Value()
		if !ok {
			m.errMsg = m.form.form.ErrorMessage()
			return m, nil
		}
		m.errMsg = ""
		m.accepted = values
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			return m, m.leave(1)
		case key.Matches(msg, keys.backtab):
			return m, m.leave(-1)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdValidateForm()
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

// View implements [tea.Model].
func (m *SignupModel) View() string {
	var b strings.Builder

	for i, f := range m.form.fields {
		b.WriteString(padRight(m.form.labels[i], labelWidth))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]")
		if f.Validating() {
			b.WriteString(" ")
			b.WriteString(pendingStyle.Render("validating…"))
		}
		b.WriteString("\n")
		if f.HasError() {
			b.WriteString(padRight("", labelWidth))
			b.WriteString(" │ ")
			b.WriteString(errorStyle.Render(f.ErrorMessage()))
			b.WriteString("\n")
		}
	}

	switch {
	case m.submitting:
		b.WriteString("\n[Sign up...]\n")
	case m.form.form.HasFormError():
		b.WriteString("\n[Sign up]\n\n")
		b.WriteString(errorStyle.Render(m.form.form.FormError()))
		b.WriteString("\n")
	default:
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit │ esc: reset │ f1: about")
}

// Accepted returns the submitted values, or nil if the form was not accepted.
func (m *SignupModel) Accepted() field.Values {
	return m.accepted
}

func (m *SignupModel) updateFocused(msg tea.Msg) tea.Cmd {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	value := m.inputs[m.focus].Value()
	if value == before {
		return cmd
	}

	ctx, cancel := m.passContext()
	done := m.form.fields[m.focus].OnChange(ctx, value)
	index := m.focus

	cmds := []tea.Cmd{cmd, func() tea.Msg {
		<-done
		cancel()
		return fieldValidatedMsg{index: index}
	}}

	return tea.Batch(append(cmds, m.revalidateDependents(index)...)...)
}

// revalidateDependents returns passes for the fields that depend on index and
// already validate while typing, so a confirmation never shows a stale result.
func (m *SignupModel) revalidateDependents(index int) []tea.Cmd {
	var cmds []tea.Cmd
	for _, d := range m.form.dependents[index] {
		if m.form.fields[d].AutoValidationEnabled() {
			cmds = append(cmds, m.cmdValidateField(d))
		}
	}
	return cmds
}

// leave enables auto-validation on the focused field, moves the focus by
// step and returns a command validating the field that was left.
func (m *SignupModel) leave(step int) tea.Cmd {
	left := m.focus
	m.form.fields[left].EnableAutoValidation()

	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()

	return m.cmdValidateField(left)
}

func (m *SignupModel) cmdValidateField(index int) tea.Cmd {
	state := m.form.fields[index]
	ctx, cancel := m.passContext()

	return func() tea.Msg {
		defer cancel()
		_, err := state.Validate(ctx)
		return fieldValidatedMsg{index: index, err: err}
	}
}

func (m *SignupModel) cmdValidateForm() tea.Cmd {
	form := m.form.form
	ctx, cancel := m.passContext()

	return func() tea.Msg {
		defer cancel()
		outcome, err := form.Validate(ctx)
		return formValidatedMsg{outcome: outcome, err: err}
	}
}

func (m *SignupModel) passContext() (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(m.ctx)
	}
	return context.WithTimeout(m.ctx, m.timeout)
}

func (m *SignupModel) reset() {
	for i, f := range m.form.fields {
		f.Reset("")
		if m.autoValidate {
			f.EnableAutoValidation()
		}
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.form.form.SetFormError("")
	m.errMsg = ""
	m.submitting = false
	m.focus = 0
	m.inputs[m.focus].Focus()
}
