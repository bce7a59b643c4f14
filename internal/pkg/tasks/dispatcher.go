// Package tasks runs fire-and-forget work in the background while keeping it observable.
package tasks

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// Func is a unit of background work
type Func func(ctx context.Context) error

// Dispatcher submits background tasks and logs their failures
type Dispatcher interface {
	Submit(name string, fn Func)
	Wait()
}

// Runner is the goroutine-backed Dispatcher. Tasks run detached from the
// caller's context with their own timeout.
type Runner struct {
	wg      conc.WaitGroup
	base    context.Context
	timeout time.Duration
	failed  atomic.Int64
}

// NewRunner creates a dispatcher whose tasks derive from base
func NewRunner(base context.Context, timeout time.Duration) *Runner {
	if base == nil {
		base = context.Background()
	}
	return &Runner{base: base, timeout: timeout}
}

// Submit starts fn in the background. Errors and panics are logged, never returned.
func (r *Runner) Submit(name string, fn Func) {
	r.wg.Go(func() {
		ctx := r.base
		if r.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, r.timeout)
			defer cancel()
		}

		var err error
		var catcher panics.Catcher
		catcher.Try(func() { err = fn(ctx) })
		if rec := catcher.Recovered(); rec != nil {
			err = fmt.Errorf("panic: %v", rec.Value)
		}

		if err != nil {
			r.failed.Add(1)
			logger.Error("Background task failed",
				logger.String("task", name),
				logger.Err(err))
		}
	})
}

// Wait blocks until every submitted task has returned
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Drain waits for in-flight tasks until ctx is done. Tasks still running
// at that point are left alone and ctx.Err() is returned.
func (r *Runner) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Failed returns how many tasks have failed so far
func (r *Runner) Failed() int64 {
	return r.failed.Load()
}
