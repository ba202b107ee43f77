// Package animator combines the frames of several visuals into one
// animation with a single, continuous frame counter.
package animator

import (
	"errors"
	"fmt"
	"image"
	"time"

	"gridreel/internal/codec"
	"gridreel/pkg/visual"
)

var (
	// ErrNoVisuals is returned for a job without visuals.
	ErrNoVisuals = errors.New("no visuals to animate")
	// ErrDimensionMismatch is returned when visuals of different canvas sizes
	// are combined without Resize.
	ErrDimensionMismatch = errors.New("visual canvas sizes differ")
)

// Job describes one combined animation.
type Job struct {
	Visuals       []*visual.Visual
	FrameDuration time.Duration
	// Hold, when positive, repeats the final state of the last visual once at
	// the very end and overrides every visual's own hold.
	Hold time.Duration
	// LoopCount is written to the file's loop field, 0 loops forever.
	LoopCount int
	// Resize scales every frame to this size with nearest-neighbor sampling.
	// The zero value keeps the canvas size.
	Resize  image.Point
	Options visual.Options
}

// Validate checks the job before any frame is added or written.
func (j Job) Validate() error {
	if len(j.Visuals) == 0 {
		return ErrNoVisuals
	}
	total := 0
	for i, v := range j.Visuals {
		if v == nil {
			return fmt.Errorf("visual %d is nil", i)
		}
		total += v.Len()
	}
	if total == 0 {
		return visual.ErrNoFrames
	}
	if j.Resize != (image.Point{}) {
		if j.Resize.X <= 0 || j.Resize.Y <= 0 {
			return fmt.Errorf("invalid resize %v", j.Resize)
		}
		return nil
	}
	want := j.Visuals[0].Size()
	for i, v := range j.Visuals[1:] {
		if got := v.Size(); got != want {
			return fmt.Errorf("%w: visual %d is %v, visual 0 is %v", ErrDimensionMismatch, i+1, got, want)
		}
	}
	return nil
}

// expandHolds appends hold frames according to the job's hold policy and
// returns the number of frames that count as global hold frames.
func (j Job) expandHolds() (int, error) {
	if j.Hold > 0 {
		n := visual.HoldFrameCount(j.Hold, j.FrameDuration)
		last := len(j.Visuals) - 1
		if err := j.Visuals[last].ExpandHold(n); err != nil {
			return 0, fmt.Errorf("visual %d: %w", last, err)
		}
		return n, nil
	}
	for i, v := range j.Visuals {
		if v.Hold() <= 0 {
			continue
		}
		if err := v.ExpandHold(visual.HoldFrameCount(v.Hold(), j.FrameDuration)); err != nil {
			return 0, fmt.Errorf("visual %d: %w", i, err)
		}
	}
	return 0, nil
}

// Export writes the frames of every visual, in order, to filename. The file
// extension selects APNG (.apng, .png) or GIF (.gif); the file is only
// replaced when encoding succeeds; on failure every visual keeps only the
// frames it had recorded before the call.
func Export(filename string, j Job) error {
	f, err := codec.FormatFor(filename)
	if err != nil {
		return err
	}
	if err := j.Validate(); err != nil {
		return fmt.Errorf("export %q: %w", filename, err)
	}
	recorded := make([]int, len(j.Visuals))
	for i, v := range j.Visuals {
		recorded[i] = v.Len()
	}
	rollback := func() {
		for i, v := range j.Visuals {
			v.Truncate(recorded[i])
		}
	}
	hold, err := j.expandHolds()
	if err != nil {
		rollback()
		return fmt.Errorf("expandHolds failed: %w", err)
	}
	s := visual.NewStream(j.Visuals, hold, j.Resize, j.Options)
	if err := visual.WriteStream(filename, f, s, codec.Options{LoopCount: j.LoopCount, FrameDuration: j.FrameDuration}, j.Options); err != nil {
		rollback()
		return err
	}
	return nil
}
