package app

import (
	"time"
)

const (
	// iconifiedFPS caps the loop while the window is minimized.
	iconifiedFPS = 10
	// spinMargin is the tail of each wait spent polling the clock instead
	// of sleeping, since Sleep tends to overshoot.
	spinMargin = 200 * time.Microsecond
)

// FrameLimiter paces the render loop to a frame cap that is read every frame,
// so a cap changed at runtime applies on the next Wait.
type FrameLimiter struct {
	limit func() int
	now   func() time.Time
	sleep func(time.Duration)

	// schedule state: the cap it was built for and the next deadline
	cap      int
	deadline time.Time
}

// NewFrameLimiter returns a limiter reading its cap from limit. A cap of 0 or
// less leaves the loop unthrottled.
func NewFrameLimiter(limit func() int) *FrameLimiter {
	return &FrameLimiter{
		limit: limit,
		now:   time.Now,
		sleep: preciseSleep,
	}
}

// Wait blocks until the next frame is due and returns how long it waited.
// The schedule restarts from now when the cap changes or the loop has fallen
// more than a frame behind, so one hitch does not trigger a burst of
// unthrottled catch-up frames.
func (f *FrameLimiter) Wait(iconified bool) time.Duration {
	c := f.limit()
	if iconified {
		c = iconifiedFPS
	}
	if c <= 0 {
		f.cap, f.deadline = 0, time.Time{}
		return 0
	}

	period := time.Second / time.Duration(c)
	now := f.now()
	if c != f.cap || f.deadline.IsZero() || now.Sub(f.deadline) > period {
		f.cap = c
		f.deadline = now.Add(period)
	} else {
		f.deadline = f.deadline.Add(period)
	}

	wait := f.deadline.Sub(now)
	if wait <= 0 {
		return 0
	}
	f.sleep(wait)
	return wait
}

// preciseSleep sleeps for most of d and spins through the rest.
func preciseSleep(d time.Duration) {
	until := time.Now().Add(d)
	if d > spinMargin {
		time.Sleep(d - spinMargin)
	}
	for time.Now().Before(until) {
	}
}
