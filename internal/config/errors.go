package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidValidationConfigs indicates invalid validation settings
	// (for example, a negative pass timeout).
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
	// ErrInvalidRemoteConfigs indicates invalid remote check settings
	// (for example, a check URL that is not absolute http(s)).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
)
