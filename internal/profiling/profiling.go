// Package profiling accumulates per-frame CPU time under dotted bucket
// names such as "renderer.Draw".
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("scene.Draw")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the totals. Call it at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// SumWithPrefix adds up every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			total += v
		}
	}
	return total
}

// TopN formats the n largest buckets, e.g. "renderer.Draw:4.2ms, scene.Draw:2.1ms".
// Ties are broken by name.
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] != ss[names[j]] {
			return ss[names[i]] > ss[names[j]]
		}
		return names[i] < names[j]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		ms := float64(ss[name].Microseconds()) / 1000.0
		parts = append(parts, name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms")
	}
	return strings.Join(parts, ", ")
}
