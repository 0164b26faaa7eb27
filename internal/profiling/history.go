package profiling

import "time"

// historySize is the number of frames kept by FrameHistory.
const historySize = 60

// FrameHistory keeps a rolling window of frame durations.
type FrameHistory struct {
	frames []time.Duration
	min    time.Duration
	max    time.Duration
	avg    time.Duration
}

// Add records d and recomputes min, max and average over the window.
func (h *FrameHistory) Add(d time.Duration) {
	if len(h.frames) >= historySize {
		h.frames = h.frames[1:]
	}
	h.frames = append(h.frames, d)

	var total time.Duration
	h.min, h.max = d, d
	for _, v := range h.frames {
		total += v
		h.min = min(h.min, v)
		h.max = max(h.max, v)
	}
	h.avg = total / time.Duration(len(h.frames))
}

func (h *FrameHistory) Len() int { return len(h.frames) }

// Stats returns min, max and average over the window, zero when empty.
func (h *FrameHistory) Stats() (lo, hi, avg time.Duration) {
	return h.min, h.max, h.avg
}
