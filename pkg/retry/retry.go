// Package retry runs a unit of work under a bounded attempt budget with
// backoff between attempts and per-attempt timeouts.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrAborted indicates the caller's context ended before the attempt budget was spent.
var ErrAborted = errors.New("retry aborted")

// ExhaustedError is returned when every attempt failed, or when an attempt
// failed with an error the policy does not retry.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Option configures a Policy.
type Option func(*Policy)

// WithRetryable sets the predicate that decides whether a failed attempt
// may be retried. By default every failure is retried.
func WithRetryable(fn func(error) bool) Option {
	return func(p *Policy) {
		p.retryable = fn
	}
}

// WithOnRetry registers a callback invoked after a failed attempt and before
// the backoff wait that precedes the next attempt.
func WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Option {
	return func(p *Policy) {
		p.onRetry = fn
	}
}

// Policy is an immutable retry strategy safe for concurrent use.
type Policy struct {
	maxAttempts    int
	backoff        time.Duration
	multiplier     float64
	maxBackoff     time.Duration
	attemptTimeout time.Duration
	retryable      func(error) bool
	onRetry        func(attempt int, err error, wait time.Duration)
}

// New creates a Policy from a finalized Config.
func New(cfg *Config, opts ...Option) *Policy {
	p := &Policy{
		maxAttempts:    max(cfg.MaxAttempts, 1),
		backoff:        cfg.BackoffDuration(),
		multiplier:     max(cfg.BackoffMultiplier, 1),
		maxBackoff:     cfg.MaxBackoffDuration(),
		attemptTimeout: cfg.AttemptTimeoutDuration(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxAttempts returns the total number of attempts, including the first.
func (p *Policy) MaxAttempts() int {
	return p.maxAttempts
}

// Wait returns the backoff that follows the given failed attempt (1-indexed).
func (p *Policy) Wait(attempt int) time.Duration {
	wait := time.Duration(float64(p.backoff) * math.Pow(p.multiplier, float64(attempt-1)))
	if p.maxBackoff > 0 && wait > p.maxBackoff {
		return p.maxBackoff
	}
	return wait
}

// Do invokes fn until it succeeds, the attempt budget is spent, fn fails
// with a non-retryable error, or ctx ends. Each attempt receives a context
// bounded by the attempt timeout; an attempt that times out counts as a failure.
// When ctx ends first, the returned error wraps ErrAborted and ctx's error.
func Do[T any](ctx context.Context, p *Policy, fn func(ctx context.Context, attempt int) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, abort(attempt-1, err, lastErr)
		}

		result, err := runAttempt(ctx, p.attemptTimeout, attempt, fn)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, abort(attempt, ctx.Err(), lastErr)
		}
		if p.retryable != nil && !p.retryable(err) {
			return zero, &ExhaustedError{Attempts: attempt, Err: err}
		}
		if attempt == p.maxAttempts {
			break
		}

		wait := p.Wait(attempt)
		if p.onRetry != nil {
			p.onRetry(attempt, err, wait)
		}

		select {
		case <-ctx.Done():
			return zero, abort(attempt, ctx.Err(), lastErr)
		case <-time.After(wait):
		}
	}

	return zero, &ExhaustedError{Attempts: p.maxAttempts, Err: lastErr}
}

func runAttempt[T any](ctx context.Context, timeout time.Duration, attempt int, fn func(context.Context, int) (T, error)) (T, error) {
	if timeout <= 0 {
		return fn(ctx, attempt)
	}
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(actx, attempt)
}

func abort(attempts int, ctxErr, lastErr error) error {
	if lastErr == nil {
		return fmt.Errorf("%w before attempt %d: %w", ErrAborted, attempts+1, ctxErr)
	}
	return fmt.Errorf("%w after %d attempt(s): %w (last error: %v)", ErrAborted, attempts, ctxErr, lastErr)
}
