// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validation

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-formstate/models"
)

// Pending is an asynchronous validator response that settles exactly once,
// either to a [models.ValidationResponse] or to a fault.
type Pending struct {
	done chan struct{}
	once sync.Once

	response models.ValidationResponse
	err      error
}

// NewPending returns an unsettled computation. Settle it with Resolve or Reject.
func NewPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Resolved returns a computation that has already settled to resp.
func Resolved(resp models.ValidationResponse) *Pending {
	p := NewPending()
	_ = p.Resolve(resp)
	return p
}

// Go runs fn on a new goroutine and returns the computation it settles.
// An error returned by fn, or a panic inside it, settles the computation as a
// fault. If ctx is already done, fn is not called.
func Go(ctx context.Context, fn func(context.Context) (models.ValidationResponse, error)) *Pending {
	p := NewPending()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				_ = p.Reject(fmt.Errorf("%w: %v", ErrValidatorPanic, r))
			}
		}()

		select {
		case <-ctx.Done():
			_ = p.Reject(ctx.Err())
			return
		default:
		}

		resp, err := fn(ctx)
		if err != nil {
			_ = p.Reject(err)
			return
		}
		_ = p.Resolve(resp)
	}()

	return p
}

// Resolve settles the computation with resp.
// It returns ErrAlreadySettled if the computation has settled before.
func (p *Pending) Resolve(resp models.ValidationResponse) error {
	return p.settle(resp, nil)
}

// Reject settles the computation as a fault. A nil err is recorded as
// ErrValidatorFault so a rejection is never mistaken for success.
func (p *Pending) Reject(err error) error {
	if err == nil {
		err = ErrValidatorFault
	}
	return p.settle(models.NoError, err)
}

func (p *Pending) settle(resp models.ValidationResponse, err error) error {
	settled := false
	p.once.Do(func() {
		p.response = resp
		p.err = err
		close(p.done)
		settled = true
	})

	if !settled {
		return ErrAlreadySettled
	}
	return nil
}

// Done returns a channel that is closed once the computation settles.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// IsSettled reports whether the computation has settled, without blocking.
func (p *Pending) IsSettled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the computation settles or ctx is done.
// A settled result always wins over a context that is done at the same time.
func (p *Pending) Await(ctx context.Context) (models.ValidationResponse, error) {
	if p.IsSettled() {
		return p.response, p.err
	}

	select {
	case <-p.done:
		return p.response, p.err
	case <-ctx.Done():
		return models.NoError, ctx.Err()
	}
}
