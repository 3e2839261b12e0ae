package perf

import (
	"time"
)

// StopWatch accumulates the duration of timed calls.
type StopWatch struct {
	Count int
	Total time.Duration
}

type Timeable func()

func (t *StopWatch) TimeIt(fn Timeable) (duration time.Duration) {
	start := time.Now()
	t.Count++
	defer func() {
		duration = time.Since(start)
		t.Total += duration
	}()

	fn()
	return
}

// Rate returns the number of events per second over the total duration.
func (t *StopWatch) Rate(events int) float64 {
	if t.Total <= 0 {
		return 0
	}
	return float64(events) / t.Total.Seconds()
}
