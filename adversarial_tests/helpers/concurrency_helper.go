package helpers

import (
	"fmt"
	"runtime"
	"sync"
	"time"
)

// GoroutineSnapshot captures the goroutine count at a point in time
type GoroutineSnapshot struct {
	Count     int
	Timestamp time.Time
}

// TakeGoroutineSnapshot captures the current number of goroutines
func TakeGoroutineSnapshot() *GoroutineSnapshot {
	return &GoroutineSnapshot{
		Count:     runtime.NumGoroutine(),
		Timestamp: time.Now(),
	}
}

// WaitForGoroutineCleanup polls until the goroutine count drops to within
// tolerance of targetCount or maxWait passes.
func WaitForGoroutineCleanup(maxWait time.Duration, targetCount int, tolerance int) (int, error) {
	deadline := time.Now().Add(maxWait)
	for {
		current := runtime.NumGoroutine()
		if current <= targetCount+tolerance {
			return current, nil
		}
		if time.Now().After(deadline) {
			return current, fmt.Errorf("goroutine leak: %d goroutines, expected at most %d", current, targetCount+tolerance)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// CoordinatedStart runs numOps operations that all begin at the same moment
// and returns their errors indexed by operation id.
func CoordinatedStart(numOps int, opFunc func(id int) error) []error {
	errs := make([]error, numOps)
	start := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < numOps; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			<-start
			errs[id] = opFunc(id)
		}(i)
	}

	close(start)
	wg.Wait()
	return errs
}
