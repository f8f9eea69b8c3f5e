package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of failing the real test
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestCheckNoGoroutineLeak_Clean(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForStragglers(t *testing.T) {
	checker := NewGoroutineChecker(t)
	go func() { time.Sleep(20 * time.Millisecond) }()
	checker.Check(0)
}

func TestGoroutineChecker_DetectsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() { <-done }()
	checker.Check(0)
	close(done)

	assert.True(t, rec.failed)
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	go func() { <-done }()
	checker.Check(1)
	close(done)

	assert.False(t, rec.failed)
}

func TestWaitForGoroutines(t *testing.T) {
	base := runtime.NumGoroutine()
	go func() { time.Sleep(10 * time.Millisecond) }()
	WaitForGoroutines(t, base, time.Second)
}
