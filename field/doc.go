// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package field provides the Validatable capability and headless field and
// form components built on the validation chain evaluator.
//
// Core concepts:
//   - Validatable: the contract any field or form implements to take part in
//     validation. A composing parent only depends on this interface.
//   - FieldState: a single value with an ordered validator chain.
//   - FormState: named members validated in order, followed by form-level
//     validators over the collected values.
//
// Usage patterns:
//  1. Build a FieldState per input with its validators.
//  2. Feed user input through OnChange; call EnableAutoValidation when the
//     user leaves the input so later edits validate on their own.
//  3. Compose fields into a FormState and call Validate on submit.
//
// Rendering, debouncing and error display are left to the caller.
package field
