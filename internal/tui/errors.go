// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"

	"github.com/MKhiriev/go-formstate/validation"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves without submitting.
var ErrUserQuit = errors.New("user quit")

// humanizeFault turns a validation fault into a line for the status bar.
func humanizeFault(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validation.ErrValidatorPanic):
		return "A validator crashed, see the log file"
	case !errors.Is(err, validation.ErrValidatorFault) && errors.Is(err, context.DeadlineExceeded):
		return "Validation timed out"
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return "Check service did not answer in time"
		}
		return "Check service is unavailable"
	}

	return err.Error()
}
