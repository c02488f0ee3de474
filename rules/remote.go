// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-formstate/validation"
	"github.com/go-resty/resty/v2"
)

// DefaultRemoteMessage is used by Remote when the endpoint rejects a value
// without a message and none was configured.
const DefaultRemoteMessage = "value is not available"

// remoteCheckError is the JSON body a remote endpoint may send with a
// rejection.
type remoteCheckError struct {
	Error string `json:"error"`
}

// NewRemoteClient builds the HTTP client used by Remote.
func NewRemoteClient(baseURL string, timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

// Remote returns an asynchronous validator that asks an HTTP endpoint about
// the value with GET path?value=<value>.
//
// Responses:
//   - 200 or 204: the value is accepted;
//   - 409 or 422: the value is rejected with msg, or with the "error" field
//     of the JSON body when msg is empty;
//   - anything else, or a transport error: a fault.
func Remote(client *resty.Client, path, msg string) validation.Validator[string] {
	return validation.AsyncFunc(func(ctx context.Context, value string) (string, error) {
		var body remoteCheckError

		resp, err := client.R().
			SetContext(ctx).
			SetQueryParam("value", value).
			SetError(&body).
			Get(path)
		if err != nil {
			return "", fmt.Errorf("remote check request: %w", err)
		}

		switch resp.StatusCode() {
		case http.StatusOK, http.StatusNoContent:
			return "", nil
		case http.StatusConflict, http.StatusUnprocessableEntity:
			if msg != "" {
				return msg, nil
			}
			if body.Error != "" {
				return body.Error, nil
			}
			return DefaultRemoteMessage, nil
		default:
			return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
		}
	})
}
