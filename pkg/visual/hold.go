package visual

import (
	"fmt"
	"time"

	"gridreel/internal/codec"
)

// HoldFrameCount returns how many extra frames of frameDuration fit into hold.
// A zero frame duration counts as one millisecond.
func HoldFrameCount(hold, frameDuration time.Duration) int {
	if hold <= 0 {
		return 0
	}
	if frameDuration <= 0 {
		frameDuration = time.Millisecond
	}
	return int(hold / frameDuration)
}

// ExpandHold appends n snapshots of the live canvas. Cells filled after the
// last Snapshot are therefore part of the hold frames.
func (v *Visual) ExpandHold(n int) error {
	if n <= 0 {
		return nil
	}
	v.drawGridlines()
	frame, err := codec.EncodePNG(v.canvas.Image())
	if err != nil {
		return fmt.Errorf("hold frame encode failed: %w", err)
	}
	for i := 0; i < n; i++ {
		v.frames.Append(frame)
	}
	return nil
}
