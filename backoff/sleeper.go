package backoff

import (
	"context"
	"math"
	"time"
)

// Sleeper blocks the caller for a number of seconds.
type Sleeper interface {
	Sleep(seconds uint64)
}

// SleeperFunc adapts a plain function to Sleeper.
type SleeperFunc func(seconds uint64)

// Sleep calls f(seconds).
func (f SleeperFunc) Sleep(seconds uint64) { f(seconds) }

// RealSleeper blocks with time.Sleep.
type RealSleeper struct{}

// Sleep blocks for seconds of wall-clock time.
func (RealSleeper) Sleep(seconds uint64) {
	time.Sleep(Seconds(seconds))
}

// ContextSleeper returns a Sleeper that wakes up early once ctx is done.
// The caller is expected to check ctx.Err after the wait.
func ContextSleeper(ctx context.Context) Sleeper {
	return SleeperFunc(func(seconds uint64) {
		d := Seconds(seconds)
		if d <= 0 {
			return
		}

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
		}
	})
}

// Seconds converts n seconds to a time.Duration, clamping at the largest
// representable duration.
func Seconds(n uint64) time.Duration {
	if n > uint64(math.MaxInt64/int64(time.Second)) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(n) * time.Second
}
