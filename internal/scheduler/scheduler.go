// Package scheduler runs jobs on the worker pool at fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a named job to run every interval. Ticks that arrive
// while the previous run is still queued or running are skipped, so a slow
// job never piles up behind itself.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	if interval <= 0 {
		logger.FromContext(context.Background()).Warn(LogMsgJobDisabled, "job", name)
		return
	}

	busy := make(chan struct{}, 1)
	wrapped := worker.JobFunc(func(ctx context.Context) error {
		defer func() { <-busy }()
		return job.Process(ctx)
	})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				select {
				case busy <- struct{}{}:
				default:
					logger.FromContext(context.Background()).Debug(LogMsgTickSkipped, "job", name)
					continue
				}
				if !s.workerPool.Enqueue(wrapped) {
					<-busy
					return
				}
			case <-s.quit:
				return
			}
		}
	}()
	logger.FromContext(context.Background()).Info(LogMsgJobScheduled, "job", name, "interval", interval)
}

// Stop stops all scheduled jobs. Runs already handed to the pool still finish.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
