// Package leaktest checks that background machinery (worker pools, the SSE
// hub, schedulers) releases its goroutines when stopped.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Settle is how long a checker waits for goroutines to wind down
const Settle = 500 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines outlive the baseline
// once Settle has passed. It returns as soon as the count is back in range.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := waitFor(g.before+tolerance, Settle)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines remain
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if n := waitFor(target, timeout); n > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", n, target)
	}
}

func waitFor(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(5 * time.Millisecond)
	}
}
