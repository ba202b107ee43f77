// Package app plays recorded animations and previews still images in an
// ebiten window. Without the ebiten build tag every entry point reports
// ErrHeadless.
package app

import (
	"errors"
	"time"

	"gridreel/internal/core"
)

// ErrHeadless is returned when the binary was built without the ebiten tag.
var ErrHeadless = errors.New("viewer requires building with the 'ebiten' tag")

// Playback tracks which frame of an animation is on screen.
type Playback struct {
	delays []time.Duration
	loops  int
	ticker *core.FrameTicker

	index  int
	plays  int
	paused bool
}

// NewPlayback prepares playback of len(delays) frames. loops is the number of
// complete plays, 0 repeats forever. A non-zero override replaces every delay.
func NewPlayback(delays []time.Duration, loops int, override time.Duration) *Playback {
	d := make([]time.Duration, len(delays))
	for i, delay := range delays {
		if override > 0 {
			delay = override
		}
		d[i] = delay
	}
	p := &Playback{delays: d, loops: max(loops, 0)}
	p.ticker = core.NewFrameTicker(p.delay(0))
	return p
}

func (p *Playback) delay(i int) time.Duration {
	if i < 0 || i >= len(p.delays) || p.delays[i] <= 0 {
		return time.Millisecond
	}
	return p.delays[i]
}

// Index returns the frame currently on screen.
func (p *Playback) Index() int { return p.index }

// Paused reports whether playback is paused.
func (p *Playback) Paused() bool { return p.paused }

// Done reports whether every requested play has finished.
func (p *Playback) Done() bool { return p.loops > 0 && p.plays >= p.loops }

// TogglePause pauses or resumes playback.
func (p *Playback) TogglePause() {
	p.paused = !p.paused
	p.ticker.Reset()
}

// Restart rewinds to the first frame and clears the play count.
func (p *Playback) Restart() {
	p.index = 0
	p.plays = 0
	p.ticker.Reset()
	p.ticker.SetStep(p.delay(0))
}

// Step moves one frame forward, wrapping around at the end. A finished
// playback stays on its last frame.
func (p *Playback) Step() {
	if len(p.delays) == 0 || p.Done() {
		return
	}
	p.index++
	if p.index >= len(p.delays) {
		p.plays++
		if p.Done() {
			p.index = len(p.delays) - 1
			return
		}
		p.index = 0
	}
	p.ticker.SetStep(p.delay(p.index))
}

// Advance moves playback forward to wall time now.
func (p *Playback) Advance(now time.Time) {
	if p.paused || p.Done() {
		p.ticker.Reset()
		return
	}
	for n := p.ticker.Advance(now); n > 0 && !p.Done(); n-- {
		p.Step()
	}
}
