package visual

import (
	"fmt"
	"image"

	"gridreel/internal/render"

	"golang.org/x/image/draw"
)

// CounterLabel prefixes the frame counter.
const CounterLabel = "Frame:"

const (
	// counterMargin is the gap left of the counter text.
	counterMargin = 3
	// counterTop is the gap between the grid and the counter text. With it
	// the 13px face fits the 15px minimum band.
	counterTop = 2
)

// CounterText formats the frame counter.
func CounterText(label string, pos, total int) string {
	return fmt.Sprintf("%s %d / %d", label, pos, total)
}

// CounterPosition returns the position and total to display for the
// processed-th frame (1-based) of frames, the last hold of which are hold
// frames. Hold frames keep showing the last real position.
func CounterPosition(processed, frames, hold int) (pos, total int) {
	total = frames - hold
	pos = processed
	if pos > total {
		pos = total
	}
	return pos, total
}

// Annotate writes the counter just below the grid of img. It does not touch
// the frame buffer.
func (v *Visual) Annotate(img draw.Image, label string, pos, total int) {
	pt := image.Pt(counterMargin, v.gridSize.Y+counterTop)
	render.DrawText(img, pt, CounterText(label, pos, total), v.counterColor)
}
