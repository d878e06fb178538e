// Package leaktest provides a goroutine leak checker for tests that spin up
// background resources such as connection pools.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineChecker compares the goroutine count before and after the code
// under test.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Allow background goroutines to stabilize before sampling
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when the goroutine count grew past the baseline by
// more than tolerance.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	// Allow finished goroutines to actually exit
	runtime.Gosched()
	time.Sleep(50 * time.Millisecond)
	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	after := runtime.NumGoroutine()
	leaked := after - g.before

	if leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test when any goroutine it
// started is still running afterwards.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
