package worker

import (
	"context"
	"sync"
	"time"
)

// deadlines keeps at most one armed timer per player. Fired callbacks run on
// their own goroutine and are tracked so close can wait for them.
type deadlines struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
	closed chan struct{}
	wg     sync.WaitGroup
}

func newDeadlines() *deadlines {
	return &deadlines{
		timers: make(map[string]*time.Timer),
		closed: make(chan struct{}),
	}
}

func (d *deadlines) isClosed() bool {
	select {
	case <-d.closed:
		return true
	default:
		return false
	}
}

// arm replaces any timer for id with one that runs fire after wait
func (d *deadlines) arm(id string, wait time.Duration, fire func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isClosed() {
		return
	}
	if existing, ok := d.timers[id]; ok {
		existing.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(wait, func() {
		d.mu.Lock()
		current := d.timers[id] == timer
		if current {
			delete(d.timers, id)
		}
		d.mu.Unlock()
		if current {
			d.run(fire)
		}
	})
	d.timers[id] = timer
}

// run executes fire now unless closed
func (d *deadlines) run(fire func()) {
	d.mu.Lock()
	if d.isClosed() {
		d.mu.Unlock()
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		fire()
	}()
}

func (d *deadlines) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}

// close stops every armed timer, returning their ids, then waits for
// callbacks already running
func (d *deadlines) close(ctx context.Context) ([]string, error) {
	d.mu.Lock()
	if d.isClosed() {
		d.mu.Unlock()
		return nil, nil
	}
	close(d.closed)
	cancelled := make([]string, 0, len(d.timers))
	for id, t := range d.timers {
		t.Stop()
		cancelled = append(cancelled, id)
	}
	d.timers = make(map[string]*time.Timer)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return cancelled, nil
	case <-ctx.Done():
		return cancelled, ctx.Err()
	}
}
