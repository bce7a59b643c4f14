package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestRetrier_SucceedsAfterFailures(t *testing.T) {
	r := New(fastConfig())
	calls := 0

	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_GivesUp(t *testing.T) {
	r := New(fastConfig())
	boom := errors.New("boom")
	calls := 0

	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, calls)
	assert.Contains(t, err.Error(), "retry limit exceeded after 4 attempts")
}

func TestRetrier_NonRetryable(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryableFunc = func(error) bool { return false }
	r := New(cfg)
	calls := 0

	err := r.Execute(context.Background(), "op", func(ctx context.Context) error {
		calls++
		return errors.New("fatal")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWithDefaults().Execute(ctx, "op", func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_CappedAtMax(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 2 * time.Second, Multiplier: 10})
	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(3))
}

func TestConnect(t *testing.T) {
	r := New(fastConfig())
	calls := 0

	v, err := Connect(context.Background(), r, "dial", func() (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("refused")
		}
		return "conn", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "conn", v)
}
