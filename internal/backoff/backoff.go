// Package backoff provides a pure delay calculator for polling loops.
//
// The controller only computes delays; it never sleeps, schedules or
// retries. Callers own the loop and the timer. Randomness for jitter is
// injectable, which keeps every delay deterministic under test.
package backoff

import (
	"math/rand"
	"time"
)

// Config tunes a Controller.
type Config struct {
	// Base is the first failure delay; each further failure doubles it.
	Base time.Duration
	// Max caps failure delays.
	Max time.Duration
	// Success is the reconnect delay returned after a successful poll.
	Success time.Duration
	// SuccessMax caps the jittered success delay.
	SuccessMax time.Duration
	// Jitter is the +/- fraction of a delay added uniformly (0 disables).
	Jitter float64
	// Rand supplies uniform [0,1) draws for jitter; nil uses math/rand.
	Rand func() float64
}

// Controller tracks consecutive failures and turns them into delays.
// Not safe for concurrent use; a polling loop owns exactly one.
type Controller struct {
	cfg      Config
	attempts int
}

// New returns a controller with zero attempts.
func New(cfg Config) *Controller {
	if cfg.Rand == nil {
		cfg.Rand = rand.Float64
	}
	return &Controller{cfg: cfg}
}

// Failure returns the next retry delay, min(Max, Base*2^attempts) with
// jitter, and records the attempt.
func (c *Controller) Failure() time.Duration {
	delay := c.cfg.Base << uint(c.attempts)
	if delay > c.cfg.Max || delay <= 0 {
		// The shift overflows past ~62 attempts; the cap applies anyway.
		delay = c.cfg.Max
	}
	c.attempts++
	return c.jittered(delay, c.cfg.Max)
}

// Success resets the failure streak and returns the reconnect delay,
// jittered and clamped to SuccessMax.
func (c *Controller) Success() time.Duration {
	c.attempts = 0
	return c.jittered(c.cfg.Success, c.cfg.SuccessMax)
}

// Attempts reports the consecutive failures since the last success/reset.
func (c *Controller) Attempts() int {
	return c.attempts
}

// Reset clears the failure streak without producing a delay.
func (c *Controller) Reset() {
	c.attempts = 0
}

// jittered spreads delay by +/- Jitter fraction and clamps to max.
func (c *Controller) jittered(delay, max time.Duration) time.Duration {
	if c.cfg.Jitter > 0 {
		spread := c.cfg.Jitter * (2*c.cfg.Rand() - 1)
		delay += time.Duration(float64(delay) * spread)
	}
	if max > 0 && delay > max {
		delay = max
	}
	if delay < 0 {
		delay = 0
	}
	return delay
}
