package backoff

import (
	"log/slog"
	"math"
)

// InitialInterval is the first wait, in seconds, of every Timer.
const InitialInterval uint64 = 2

// Timer waits for growing intervals until a ceiling of cumulative seconds.
// It is not safe for concurrent use.
type Timer struct {
	elapsed uint64
	next    uint64
	ceiling uint64

	strategy Strategy
	sleeper  Sleeper
	log      *slog.Logger
}

// Option configures a Timer.
type Option func(*Timer)

// WithStrategy replaces the default Exponential strategy.
func WithStrategy(s Strategy) Option {
	return func(t *Timer) {
		if s != nil {
			t.strategy = s
		}
	}
}

// WithSleeper replaces the default RealSleeper.
func WithSleeper(s Sleeper) Option {
	return func(t *Timer) {
		if s != nil {
			t.sleeper = s
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger(log *slog.Logger) Option {
	return func(t *Timer) {
		if log != nil {
			t.log = log
		}
	}
}

// New returns a Timer that allows at most ceiling seconds of cumulative waiting.
// A zero ceiling yields a timer that is done from the start.
func New(ceiling uint64, opts ...Option) *Timer {
	t := &Timer{
		next:     InitialInterval,
		ceiling:  ceiling,
		strategy: Exponential{},
		sleeper:  RealSleeper{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Wait blocks for the current interval and returns the seconds waited.
// If the timer is already done it returns 0 immediately and leaves the
// timer untouched.
func (t *Timer) Wait() uint64 {
	if t.IsDone() {
		t.log.Debug("backoff timer done, skipping wait",
			"elapsed", t.elapsed, "next", t.next, "ceiling", t.ceiling)
		return 0
	}

	t.log.Debug("backoff wait", "seconds", t.next, "elapsed", t.elapsed, "ceiling", t.ceiling)
	t.sleeper.Sleep(t.next)

	waited := t.next
	t.elapsed = addSat(t.elapsed, waited)
	t.next = t.strategy.Next(waited)
	if t.next < waited {
		t.next = waited
	}
	return waited
}

// IsDone reports whether the next wait would push the cumulative time past
// the ceiling. A wait landing exactly on the ceiling is still allowed.
func (t *Timer) IsDone() bool {
	// elapsed + next > ceiling, without overflowing.
	return t.next > t.ceiling || t.elapsed > t.ceiling-t.next
}

// Elapsed returns the seconds waited so far.
func (t *Timer) Elapsed() uint64 { return t.elapsed }

// NextInterval returns the seconds the next Wait would block for.
func (t *Timer) NextInterval() uint64 { return t.next }

// Ceiling returns the configured cumulative ceiling in seconds.
func (t *Timer) Ceiling() uint64 { return t.ceiling }

// addSat adds a and b, saturating at math.MaxUint64.
func addSat(a, b uint64) uint64 {
	if b > math.MaxUint64-a {
		return math.MaxUint64
	}
	return a + b
}
