package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errProvider = errors.New("provider down")

func newTestBreaker(threshold int) (*Breaker, *time.Time) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b := New(Config{Name: "test", FailureThreshold: threshold, CoolDown: time.Minute})
	b.now = func() time.Time { return now }
	return b, &now
}

func fail(context.Context) error    { return errProvider }
func succeed(context.Context) error { return nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(ctx, fail), errProvider)
	}
	assert.Equal(t, StateOpen, b.State())

	called := false
	err := b.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestBreaker_SuccessResetsFailures(t *testing.T) {
	b, _ := newTestBreaker(2)
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	assert.NoError(t, b.Execute(ctx, succeed))
	_ = b.Execute(ctx, fail)

	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenTrialCall(t *testing.T) {
	b, now := newTestBreaker(1)
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	assert.Equal(t, StateOpen, b.State())

	*now = now.Add(2 * time.Minute)
	assert.NoError(t, b.Execute(ctx, succeed))
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_FailedTrialCallReopens(t *testing.T) {
	b, now := newTestBreaker(1)
	ctx := context.Background()

	_ = b.Execute(ctx, fail)
	*now = now.Add(2 * time.Minute)

	assert.ErrorIs(t, b.Execute(ctx, fail), errProvider)
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Execute(ctx, succeed), ErrOpen)
}

func TestBreaker_IgnoresCancellation(t *testing.T) {
	b, _ := newTestBreaker(1)

	err := b.Execute(context.Background(), func(context.Context) error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, b.State())
}
