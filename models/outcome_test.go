package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_Valid(t *testing.T) {
	o := Valid("alice")

	assert.False(t, o.HasError())
	v, ok := o.Value()
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestOutcome_Invalid(t *testing.T) {
	o := Invalid[int]()

	assert.True(t, o.HasError())
	v, ok := o.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestOutcome_ValidZeroValue(t *testing.T) {
	o := Valid("")

	assert.False(t, o.HasError())
	_, ok := o.Value()
	assert.True(t, ok, "a valid outcome keeps its value even when it is the zero value")
}

func TestValidationResponse_HasError(t *testing.T) {
	tests := []struct {
		name string
		resp ValidationResponse
		want bool
	}{
		{name: "no error constant", resp: NoError, want: false},
		{name: "empty literal", resp: "", want: false},
		{name: "message", resp: "required", want: true},
		{name: "whitespace is still a message", resp: " ", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.resp.HasError())
			assert.Equal(t, string(tt.resp), tt.resp.String())
		})
	}
}
