package tasks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunner_SubmitAndWait(t *testing.T) {
	r := NewRunner(context.Background(), time.Second)
	var done atomic.Int32

	for i := 0; i < 10; i++ {
		r.Submit("inc", func(ctx context.Context) error {
			done.Add(1)
			return nil
		})
	}
	r.Wait()

	assert.Equal(t, int32(10), done.Load())
	assert.Equal(t, int64(0), r.Failed())
}

func TestRunner_ErrorsAndPanicsAreContained(t *testing.T) {
	r := NewRunner(context.Background(), 0)

	r.Submit("fails", func(ctx context.Context) error { return errors.New("boom") })
	r.Submit("panics", func(ctx context.Context) error { panic("kaboom") })
	r.Submit("ok", func(ctx context.Context) error { return nil })
	r.Wait()

	assert.Equal(t, int64(2), r.Failed())
}

func TestRunner_TimeoutApplied(t *testing.T) {
	r := NewRunner(context.Background(), 10*time.Millisecond)

	r.Submit("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	r.Wait()

	assert.Equal(t, int64(1), r.Failed())
}

func TestRunner_DetachedFromCallerCancel(t *testing.T) {
	r := NewRunner(nil, 0)
	var ran atomic.Bool

	r.Submit("runs", func(ctx context.Context) error {
		ran.Store(ctx.Err() == nil)
		return nil
	})
	r.Wait()

	assert.True(t, ran.Load())
}

func TestRunner_DrainLetsInFlightTasksFinish(t *testing.T) {
	base, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := NewRunner(base, 0)
	var finished atomic.Bool

	r.Submit("release-payment", func(ctx context.Context) error {
		select {
		case <-time.After(20 * time.Millisecond):
			finished.Store(true)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	ctx, stop := context.WithTimeout(context.Background(), time.Second)
	defer stop()
	assert.NoError(t, r.Drain(ctx))
	cancel()

	assert.True(t, finished.Load())
	assert.Equal(t, int64(0), r.Failed())
}

func TestRunner_DrainStopsAtDeadline(t *testing.T) {
	base, cancel := context.WithCancel(context.Background())
	r := NewRunner(base, 0)

	r.Submit("stuck", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, stop := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer stop()
	assert.ErrorIs(t, r.Drain(ctx), context.DeadlineExceeded)

	cancel()
	r.Wait()
	assert.Equal(t, int64(1), r.Failed())
}
