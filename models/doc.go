// Package models holds the result vocabulary shared by the validation engine
// and the field/form components built on it.
//
// A validator yields a [ValidationResponse]: either [NoError] or a non-empty
// message. A field or form pass yields an [Outcome]: either invalid with no
// value, or valid with the validated value.
package models
