package models

// ValidationResponse is the result of a single validator invocation.
// A non-empty value is an error message; the empty value means no error.
type ValidationResponse string

// NoError is the response of a validator that accepted its input.
const NoError ValidationResponse = ""

// HasError reports whether the response carries an error message.
func (r ValidationResponse) HasError() bool {
	return r != NoError
}

// String returns the error message, or an empty string when there is no error.
func (r ValidationResponse) String() string {
	return string(r)
}
