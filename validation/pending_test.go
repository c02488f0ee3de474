package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-formstate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPending_ResolveOnce(t *testing.T) {
	p := NewPending()
	assert.False(t, p.IsSettled())

	require.NoError(t, p.Resolve("taken"))
	assert.True(t, p.IsSettled())

	assert.ErrorIs(t, p.Resolve("other"), ErrAlreadySettled)
	assert.ErrorIs(t, p.Reject(errors.New("late")), ErrAlreadySettled)

	resp, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ValidationResponse("taken"), resp)
}

func TestPending_RejectNilIsFault(t *testing.T) {
	p := NewPending()
	require.NoError(t, p.Reject(nil))

	resp, err := p.Await(context.Background())
	assert.ErrorIs(t, err, ErrValidatorFault)
	assert.Equal(t, models.NoError, resp)
}

func TestPending_AwaitPrefersSettledOverDoneContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := Resolved("msg").Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.ValidationResponse("msg"), resp)
}

func TestPending_AwaitContextDone(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := NewPending().Await(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPending_Done(t *testing.T) {
	p := NewPending()

	go func() {
		time.Sleep(5 * time.Millisecond)
		_ = p.Resolve("")
	}()

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("pending did not settle")
	}
}

func TestGo_SkipsFnWhenContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := make(chan struct{}, 1)
	p := Go(ctx, func(context.Context) (models.ValidationResponse, error) {
		called <- struct{}{}
		return "", nil
	})

	<-p.Done()
	_, err := p.Await(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, called)
}

func TestGo_ErrorRejects(t *testing.T) {
	cause := errors.New("backend down")
	p := Go(context.Background(), func(context.Context) (models.ValidationResponse, error) {
		return "ignored", cause
	})

	resp, err := p.Await(context.Background())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, models.NoError, resp)
}

func TestResult_Shapes(t *testing.T) {
	assert.False(t, Valid().IsAsync())
	assert.Equal(t, models.NoError, Valid().Response())

	inv := Invalid("bad")
	assert.False(t, inv.IsAsync())
	assert.Equal(t, models.ValidationResponse("bad"), inv.Response())
	assert.Nil(t, inv.Pending())

	p := NewPending()
	as := Async(p)
	assert.True(t, as.IsAsync())
	assert.Same(t, p, as.Pending())
	assert.Equal(t, models.NoError, as.Response())
}
