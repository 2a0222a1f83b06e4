// Package leaktest checks that code under test releases the goroutines and
// heap it acquires. Simulator sweeps start worker pools per call, so a
// forgotten Wait shows up here rather than in a long-running process.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = time.Second
	pollInterval  = 5 * time.Millisecond
	bytesPerMB    = 1024 * 1024
)

// GoroutineChecker compares the goroutine count at Check with a baseline
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check waits up to a second for exiting goroutines to finish, then fails
// the test if more than tolerance goroutines outlived the baseline.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if after, ok := settle(g.before + tolerance); !ok {
		g.t.Errorf("goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// settle polls until at most target goroutines run or the timeout passes
func settle(target int) (int, bool) {
	deadline := time.Now().Add(settleTimeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

// MemoryChecker compares live heap at Check with a baseline
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

func heapAlloc() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// NewMemoryChecker records the live heap after a collection
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: heapAlloc(), t: t}
}

// Check fails the test if the live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()
	after := heapAlloc()
	growthMB := (float64(after) - float64(m.before)) / bytesPerMB
	if growthMB > maxGrowthMB {
		m.t.Errorf("heap growth: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			float64(m.before)/bytesPerMB, float64(after)/bytesPerMB, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and bounds the heap it retains
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
