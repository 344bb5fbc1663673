package main

import (
	"time"

	"voxel-engine/internal/config"
)

// pausedFPS caps the loop while paused so an idle window does not spin.
const pausedFPS = 30

// FPSLimiter paces frames to config.GetFPSLimit.
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due. It sleeps for most of the
// interval and spins the last 200µs for precision on high caps.
func (f *FPSLimiter) Wait(paused bool) {
	limit := config.GetFPSLimit()
	if paused {
		limit = pausedFPS
	}
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch rather than rushing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
