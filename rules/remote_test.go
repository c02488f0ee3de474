// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-formstate/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCheckServer answers /api/check/username: "taken" is rejected, "boom"
// fails, everything else is accepted.
func newCheckServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/check/username", r.URL.Path)

		switch r.URL.Query().Get("value") {
		case "taken":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "username is already taken"})
		case "bare":
			w.WriteHeader(http.StatusUnprocessableEntity)
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestRemote(t *testing.T) {
	var hits atomic.Int32
	srv := newCheckServer(t, &hits)
	client := NewRemoteClient(srv.URL+"/", time.Second)

	tests := []struct {
		name  string
		value string
		msg   string
		want  string
	}{
		{name: "accepted", value: "alice", want: ""},
		{name: "rejected with body message", value: "taken", want: "username is already taken"},
		{name: "rejected with configured message", value: "taken", msg: "pick another name", want: "pick another name"},
		{name: "rejected without message", value: "bare", want: DefaultRemoteMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := Remote(client, "/api/check/username", tt.msg)

			res := rule(context.Background(), tt.value)
			require.True(t, res.IsAsync())

			msg, err := validation.Apply(context.Background(), tt.value, rule)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}
}

func TestRemote_UnexpectedStatusIsFault(t *testing.T) {
	var hits atomic.Int32
	srv := newCheckServer(t, &hits)

	_, err := validation.Apply(context.Background(), "boom", Remote(NewRemoteClient(srv.URL, time.Second), "/api/check/username", ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrValidatorFault)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestRemote_TransportErrorIsFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := validation.Apply(context.Background(), "alice", Remote(NewRemoteClient(url, time.Second), "/api/check/username", ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrValidatorFault)
}

func TestRemote_NotCalledAfterEarlierError(t *testing.T) {
	var hits atomic.Int32
	srv := newCheckServer(t, &hits)

	msg, err := validation.Apply(context.Background(), "",
		Required("username is required"),
		Remote(NewRemoteClient(srv.URL, time.Second), "/api/check/username", ""),
	)

	require.NoError(t, err)
	assert.Equal(t, "username is required", msg)
	assert.Zero(t, hits.Load())
}

func TestRemote_ClientTimeoutIsFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-r.Context().Done():
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client := NewRemoteClient(srv.URL, 20*time.Millisecond)

	msg, err := validation.Apply(context.Background(), "alice", Remote(client, "/api/check/username", ""))

	require.Error(t, err)
	assert.ErrorIs(t, err, validation.ErrValidatorFault)
	assert.Empty(t, msg)
}
