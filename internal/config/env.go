// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment with caarlos0/env:
//
//	CONFIG                    JSON config file path
//	APP_LOG_FILE              JSON log file path
//	VALIDATION_TIMEOUT        pass timeout, e.g. "3s"
//	VALIDATION_AUTO_VALIDATE  "true" enables auto-validation for every field
//	REMOTE_CHECK_URL          base URL of the username check
//	REMOTE_CHECK_PATH         request path of the username check
//	REMOTE_REQUEST_TIMEOUT    HTTP timeout of one check, e.g. "2s"
//
// Unset variables leave their fields zero so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
