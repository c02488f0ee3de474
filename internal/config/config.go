// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Validation controls how fields are validated.
	Validation Validation `envPrefix:"VALIDATION_"`

	// Remote configures the HTTP endpoint used by asynchronous checks.
	Remote Remote `envPrefix:"REMOTE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where JSON logs are appended. The terminal UI owns stdout,
	// so logs never go there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Validation controls how the demo runs validation passes.
type Validation struct {
	// Timeout bounds a single validation pass (e.g. "3s"). The evaluator has
	// no timeout of its own; the caller imposes this one through the context.
	// Env: VALIDATION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// AutoValidate starts every field with auto-validation enabled instead of
	// enabling it when the user leaves the field.
	// Env: VALIDATION_AUTO_VALIDATE
	AutoValidate bool `env:"AUTO_VALIDATE"`
}

// Remote configures the availability endpoint queried by the username field.
type Remote struct {
	// CheckURL is the base URL of the endpoint (e.g. "http://localhost:8080").
	// When empty, the remote check is left out of the chain.
	// Env: REMOTE_CHECK_URL
	CheckURL string `env:"CHECK_URL"`

	// CheckPath is the request path of the username check.
	// Env: REMOTE_CHECK_PATH
	CheckPath string `env:"CHECK_PATH"`

	// RequestTimeout bounds one HTTP request.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values, applied to fields no other source sets.
const (
	DefaultValidationTimeout = 5 * time.Second
	DefaultCheckPath         = "/api/check/username"
	DefaultRequestTimeout    = 3 * time.Second
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Validation: Validation{
			Timeout: DefaultValidationTimeout,
		},
		Remote: Remote{
			CheckPath:      DefaultCheckPath,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetFormDemoConfig loads, merges, and validates the demo configuration from
// environment variables, the given command-line arguments, the JSON file
// named by either of them, and defaults.
func GetFormDemoConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
