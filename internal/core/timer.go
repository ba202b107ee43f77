package core

import "time"

// FrameTicker advances through frames of a fixed duration as wall time
// passes, for playing an animation from a fixed-rate update loop.
type FrameTicker struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFrameTicker constructs a ticker for frames of the given duration.
// Non-positive durations fall back to 100ms.
func NewFrameTicker(step time.Duration) *FrameTicker {
	f := &FrameTicker{}
	f.SetStep(step)
	return f
}

// SetStep changes the frame duration. It is safe to call from the main loop.
func (f *FrameTicker) SetStep(step time.Duration) {
	if step <= 0 {
		step = 100 * time.Millisecond
	}
	f.step = step
}

// Advance reports how many frame boundaries were crossed since the previous
// call. The first call only starts the clock.
func (f *FrameTicker) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Reset restarts the clock.
func (f *FrameTicker) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}
