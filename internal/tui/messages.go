package tui

import (
	"github.com/MKhiriev/go-formstate/field"
	"github.com/MKhiriev/go-formstate/models"
)

// fieldValidatedMsg is sent when a field validation pass resolves.
type fieldValidatedMsg struct {
	index int
	err   error
}

// formValidatedMsg is sent when a whole-form pass resolves.
type formValidatedMsg struct {
	outcome models.Outcome[field.Values]
	err     error
}
