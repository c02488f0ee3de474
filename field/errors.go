package field

import "errors"

var (
	// ErrDuplicateMember is returned when a form already has a member with
	// the given name.
	ErrDuplicateMember = errors.New("duplicate form member")

	// ErrNilMember is returned when a nil Validatable is added to a form.
	ErrNilMember = errors.New("nil form member")

	// ErrEmptyMemberName is returned when a member is added without a name.
	ErrEmptyMemberName = errors.New("empty form member name")
)
