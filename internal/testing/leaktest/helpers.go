// Package leaktest reports goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = time.Second

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// let goroutines from earlier tests wind down
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{before: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines are still running once things settle
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := g.settle(g.before + tolerance)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// settle polls until the count drops to target or the timeout passes
func (g *GoroutineChecker) settle(target int) int {
	deadline := time.Now().Add(settleTimeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it left any goroutine behind
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
