package worker

import (
	"context"
	"sync"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to Job
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			// finish what was queued before the stop
			for {
				select {
				case job := <-p.jobQueue:
					p.run(job)
				default:
					return
				}
			}
		}
	}
}

func (p *Pool) run(job Job) {
	ctx := context.Background()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full.
// It returns false if the pool has been stopped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case <-p.quit:
		logger.FromContext(context.Background()).Warn(LogMsgPoolStopped)
		return false
	default:
	}

	select {
	case p.jobQueue <- job:
		return true
	case <-p.quit:
		logger.FromContext(context.Background()).Warn(LogMsgPoolStopped)
		return false
	}
}

// Stop drains queued jobs and waits for the workers to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
