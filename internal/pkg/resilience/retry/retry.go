// Package retry re-runs ledger reads that fail transiently.
//
//	payload, err := retry.Value(ctx, r, func() ([]byte, error) {
//	    return ledger.TransactionInput(ctx, hash)
//	})
//
// Errors wrapped with Permanent end the loop at once.
package retry

import (
	"context"
	"time"

	"github.com/gabapcia/orderwatch/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

type Retry interface {
	// Execute runs operation until it succeeds, returns a permanent error,
	// exhausts the attempts or ctx is done. Delays grow exponentially.
	Execute(ctx context.Context, operation func() error) error
}

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
}

type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry making 3 attempts, 1s apart at first, doubling up to
// 5s, that reports only the last error.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
		retryIf:     retry.IsRecoverable,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	retryIf := func(err error) bool {
		return retry.IsRecoverable(err) && r.cfg.retryIf(err)
	}

	return retry.Do(operation,
		retry.Context(ctx),
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.RetryIf(retryIf),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn(ctx, "attempt failed, retrying", "retry.attempt", n+1, "error", err)
		}),
	)
}

// Value runs operation through r and returns its result.
func Value[T any](ctx context.Context, r Retry, operation func() (T, error)) (T, error) {
	var v T
	err := r.Execute(ctx, func() (err error) {
		v, err = operation()
		return err
	})
	return v, err
}

// Permanent marks err as not worth another attempt. errors.Is and errors.As
// still see through it, and Execute returns err itself.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return retry.Unrecoverable(err)
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly(false) makes Execute join the errors of every attempt.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf adds a predicate; errors it rejects are returned immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
