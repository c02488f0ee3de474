package field

import (
	"github.com/MKhiriev/go-formstate/internal/logger"
	"github.com/rs/zerolog"
)

type options struct {
	name           string
	log            *logger.Logger
	autoValidation bool
}

// Option configures a FieldState or a FormState.
type Option func(*options)

// WithName sets the name used in logs and fault messages.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger sets the logger. Passes are logged at debug level, faults at
// error level. Components log nothing without one.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = &logger.Logger{Logger: log}
	}
}

// WithAutoValidation creates the component with auto-validation already on.
func WithAutoValidation() Option {
	return func(o *options) {
		o.autoValidation = true
	}
}

func applyOptions(opts []Option) options {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
