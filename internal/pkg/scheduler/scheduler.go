// Package scheduler runs a job on a fixed interval until stopped.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/logger"
)

// Job is invoked on every tick
type Job func(ctx context.Context) error

// Scheduler periodically runs a single job.
type Scheduler struct {
	mu       sync.RWMutex
	name     string
	job      Job
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a scheduler for job running every interval.
func New(name string, interval time.Duration, job Job) *Scheduler {
	return &Scheduler{
		name:     name,
		job:      job,
		interval: interval,
	}
}

// Start begins the scheduler loop. The first run happens after one interval.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.mu.Unlock()

	logger.Info("Scheduler started",
		logger.String("job", s.name),
		logger.Duration("interval", s.interval))

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// Stop gracefully stops the scheduler, waiting for a running tick to finish.
func (s *Scheduler) Stop() {
	s.mu.RLock()
	cancel := s.cancel
	done := s.done
	s.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	start := time.Now()
	if err := s.job(ctx); err != nil {
		logger.Error("Scheduled job failed",
			logger.String("job", s.name),
			logger.Err(err))
		return
	}
	logger.Debug("Scheduled job finished",
		logger.String("job", s.name),
		logger.Duration("took", time.Since(start)))
}
