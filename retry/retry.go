// Package retry runs an operation until it succeeds, pacing failures with a
// backoff.Timer.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"backoff-timer/backoff"
)

// ErrExhausted is returned when the timer ran out before the operation succeeded.
var ErrExhausted = errors.New("retry: backoff exhausted")

// Retrier runs operations under a Policy.
type Retrier struct {
	policy  Policy
	log     *slog.Logger
	sleeper backoff.Sleeper
}

// Option configures a Retrier.
type Option func(*Retrier)

// WithLogger sets the logger; by default records go nowhere.
func WithLogger(log *slog.Logger) Option {
	return func(r *Retrier) {
		if log != nil {
			r.log = log
		}
	}
}

// WithSleeper fixes the sleeper used between attempts. Without it each Do
// call sleeps with backoff.ContextSleeper bound to its context.
func WithSleeper(s backoff.Sleeper) Option {
	return func(r *Retrier) {
		r.sleeper = s
	}
}

// New returns a Retrier for p.
func New(p Policy, opts ...Option) *Retrier {
	r := &Retrier{
		policy: p,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Do calls fn until it returns nil, fn returns a Permanent error, ctx is done
// or the backoff timer is done. Each call gets its own timer.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	log := r.log.With("op_id", uuid.NewString())

	sleeper := r.sleeper
	if sleeper == nil {
		sleeper = backoff.ContextSleeper(ctx)
	}
	timer := backoff.New(r.policy.Ceiling, backoff.WithSleeper(sleeper), backoff.WithLogger(log))

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				log.Debug("operation succeeded", "attempt", attempt, "waited", timer.Elapsed())
			}
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			log.Debug("permanent failure", "attempt", attempt, "err", perm.err)
			return perm.err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("retry cancelled after %d attempts: %w", attempt, ctxErr)
		}
		if timer.IsDone() {
			log.Debug("backoff exhausted", "attempts", attempt, "waited", timer.Elapsed(), "err", err)
			return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt, err)
		}

		log.Debug("attempt failed", "attempt", attempt, "err", err)
		timer.Wait()

		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("retry cancelled after %d attempts: %w", attempt, ctxErr)
		}
	}
}

// Do runs fn with a default Retrier allowing ceiling seconds of waiting.
func Do(ctx context.Context, ceiling uint64, fn func(ctx context.Context) error) error {
	return New(Policy{Ceiling: ceiling}).Do(ctx, fn)
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so Do returns it without retrying. A nil err stays nil.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}
