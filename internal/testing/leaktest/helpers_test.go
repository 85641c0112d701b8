package leaktest

import (
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

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		for i := 0; i < 10; i++ {
			go time.Sleep(20 * time.Millisecond)
		}
	})
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	defer close(done)
	go func() { <-done }()

	checker.Check(1)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	rec := &recorder{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-done
	}()

	checker.Check(0)
	close(done)
	wg.Wait()

	assert.True(t, rec.failed)
}
