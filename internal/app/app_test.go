package app

import (
	"errors"
	"testing"
	"time"

	"igloo/internal/graphics/renderer"
	"igloo/internal/log"

	"github.com/stretchr/testify/assert"
)

type fakeRenderer struct {
	sizes  [][2]int
	err    error
	frames []renderer.FrameParams
}

func (f *fakeRenderer) Draw(p renderer.FrameParams) { f.frames = append(f.frames, p) }

func (f *fakeRenderer) Resize(w, h int) error {
	f.sizes = append(f.sizes, [2]int{w, h})
	return f.err
}

func TestHandleResizeSkipsMinimized(t *testing.T) {
	r := &fakeRenderer{}
	a := &App{renderer: r, logger: log.New("app")}

	a.handleResize(0, 0)
	a.handleResize(640, 0)
	a.handleResize(640, 480)
	assert.Equal(t, [][2]int{{640, 480}}, r.sizes)

	r.err = errors.New("boom")
	a.handleResize(10, 10)
	assert.Len(t, r.sizes, 2)
}

func TestStatsTitle(t *testing.T) {
	a := &App{title: "Igloo"}
	a.history.Add(2 * time.Millisecond)
	a.history.Add(4 * time.Millisecond)
	a.frames = 30

	assert.Equal(t, "Igloo | 60 fps | frame 2.0/3.0/4.0 ms", a.statsTitle(500*time.Millisecond))
}

// fakeClock advances only when the limiter sleeps or the test says so.
type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func newTestLimiter(limit *int) (*FrameLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	f := NewFrameLimiter(func() int { return *limit })
	f.now = clock.now
	f.sleep = clock.sleep
	return f, clock
}

func TestFrameLimiterUnlimited(t *testing.T) {
	limit := 0
	f, clock := newTestLimiter(&limit)
	for i := 0; i < 100; i++ {
		assert.Zero(t, f.Wait(false))
	}
	assert.Empty(t, clock.slept)
	assert.True(t, f.deadline.IsZero())
}

func TestFrameLimiterPacesFrames(t *testing.T) {
	limit := 200
	f, clock := newTestLimiter(&limit)
	for i := 0; i < 5; i++ {
		f.Wait(false)
		// Each frame takes 1ms of work.
		clock.t = clock.t.Add(time.Millisecond)
	}
	assert.Equal(t, []time.Duration{
		5 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
	}, clock.slept)
}

func TestFrameLimiterFollowsCapChanges(t *testing.T) {
	limit := 100
	f, _ := newTestLimiter(&limit)
	assert.Equal(t, 10*time.Millisecond, f.Wait(false))

	limit = 50
	assert.Equal(t, 20*time.Millisecond, f.Wait(false))

	// Minimized windows drop to iconifiedFPS whatever the cap.
	limit = 0
	assert.Equal(t, 100*time.Millisecond, f.Wait(true))
	assert.Zero(t, f.Wait(false))
}

func TestFrameLimiterResyncsAfterHitch(t *testing.T) {
	limit := 100
	f, clock := newTestLimiter(&limit)
	f.Wait(false)

	// A 50ms stall is five frames late; the next frame waits a full period
	// instead of running five frames back to back.
	clock.t = clock.t.Add(50 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, f.Wait(false))

	// A frame that used its whole period runs the next one without sleeping
	// and keeps the original schedule.
	clock.t = clock.t.Add(10 * time.Millisecond)
	assert.Zero(t, f.Wait(false))
	assert.Equal(t, 10*time.Millisecond, f.Wait(false))
}

func TestPreciseSleep(t *testing.T) {
	start := time.Now()
	preciseSleep(2 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}
