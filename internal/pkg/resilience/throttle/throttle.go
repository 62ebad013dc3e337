// Package throttle spaces out calls made to rate-limited remote APIs.
//
// A Throttle is shared by every caller of the same API. Wait blocks until the
// caller is allowed to proceed, so that no two calls start closer together than
// the configured interval, no matter how many goroutines are waiting.
//
//	th := throttle.New(throttle.WithInterval(1200 * time.Millisecond))
//	if err := th.Wait(ctx); err != nil {
//	    return err
//	}
//	resp, err := client.Do(req)
package throttle

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum spacing between two calls when no option is given.
const DefaultInterval = 1200 * time.Millisecond

// Throttle gates calls to a shared resource.
type Throttle interface {
	// Wait blocks until the next call may start or ctx is done.
	Wait(ctx context.Context) error
}

type config struct {
	interval time.Duration // minimum spacing between two consecutive calls
}

// Option configures a Throttle.
type Option func(*config)

// WithInterval sets the minimum spacing between two consecutive calls.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		c.interval = d
	}
}

type limiter struct {
	rl *rate.Limiter
}

var _ Throttle = (*limiter)(nil)

// New returns a Throttle allowing one call per interval.
// The first call is never delayed.
func New(opts ...Option) Throttle {
	cfg := config{
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &limiter{
		rl: rate.NewLimiter(rate.Every(cfg.interval), 1),
	}
}

func (l *limiter) Wait(ctx context.Context) error {
	return l.rl.Wait(ctx)
}
