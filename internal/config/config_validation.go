// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] is usable.
func (cfg *StructuredConfig) validate() error {
	if cfg.Validation.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout %s", ErrInvalidValidationConfigs, cfg.Validation.Timeout)
	}

	if cfg.Remote.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidRemoteConfigs, cfg.Remote.RequestTimeout)
	}

	if cfg.Remote.CheckURL == "" {
		return nil
	}

	u, err := url.Parse(cfg.Remote.CheckURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: check url %q", ErrInvalidRemoteConfigs, cfg.Remote.CheckURL)
	}

	if !strings.HasPrefix(cfg.Remote.CheckPath, "/") {
		return fmt.Errorf("%w: check path %q must start with /", ErrInvalidRemoteConfigs, cfg.Remote.CheckPath)
	}

	return nil
}
