package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	s := New("count", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_ErrorDoesNotStopLoop(t *testing.T) {
	var runs atomic.Int32
	s := New("failing", 5*time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("boom")
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	s := New("idle", time.Hour, func(ctx context.Context) error { return nil })
	s.Stop()
}

func TestScheduler_ParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := New("cancel", time.Hour, func(ctx context.Context) error { return nil })
	s.Start(ctx)
	cancel()
	s.Stop()
}
