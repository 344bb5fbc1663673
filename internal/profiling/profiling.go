package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timing buckets. Safe for concurrent use so parallel mesh
// workers can report into the same frame.

// Sample is the accumulated time and call count of one bucket.
type Sample struct {
	Total time.Duration
	Calls int
}

var (
	mu     sync.Mutex
	frame  = make(map[string]Sample)
	frames uint64
)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("world.RemoveVoxel")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := frame[name]
		s.Total += d
		s.Calls++
		frame[name] = s
		mu.Unlock()
	}
}

// ResetFrame clears the buckets. Call once at the start of every frame.
func ResetFrame() {
	mu.Lock()
	clear(frame)
	frames++
	mu.Unlock()
}

// Frames returns how many times ResetFrame has been called.
func Frames() uint64 {
	mu.Lock()
	defer mu.Unlock()
	return frames
}

// Snapshot returns a copy of the current buckets.
func Snapshot() map[string]Sample {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Sample, len(frame))
	for k, v := range frame {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, v := range frame {
		if strings.HasPrefix(k, prefix) {
			total += v.Total
		}
	}
	return total
}

// TopN formats the n slowest buckets of the current frame, e.g.
// "meshing.Build:4.2ms x3, physics.Raycast:0.1ms"
func TopN(n int) string {
	type entry struct {
		name string
		Sample
	}
	ss := Snapshot()
	list := make([]entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, entry{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Total == list[j].Total {
			return list[i].name < list[j].name
		}
		return list[i].Total > list[j].Total
	})
	if n > len(list) {
		n = len(list)
	}

	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		s := e.name + ":" + strconv.FormatFloat(float64(e.Total.Microseconds())/1000, 'f', 1, 64) + "ms"
		if e.Calls > 1 {
			s += " x" + strconv.Itoa(e.Calls)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
