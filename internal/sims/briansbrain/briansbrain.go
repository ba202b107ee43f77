// Package briansbrain implements the three-state Brian's Brain automaton.
package briansbrain

import (
	"image/color"

	"gridreel/internal/core"
	pcore "gridreel/pkg/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = []color.RGBA{
	stateDead:  {A: 0xff},
	stateOn:    {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	stateDying: {R: 0x30, G: 0x60, B: 0xff, A: 0xff},
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	return &Brain{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cur.Cells() }

// Palette colors dead, firing and dying cells.
func (b *Brain) Palette() []color.RGBA { return palette }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := pcore.NewRNG(seed).Source()
	cells := b.cur.Cells()
	for i := range cells {
		if rng.IntN(8) == 0 {
			cells[i] = stateOn
			continue
		}
		cells[i] = stateDead
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	for y := 0; y < b.cur.H; y++ {
		for x := 0; x < b.cur.W; x++ {
			var next uint8
			switch b.cur.At(x, y) {
			case stateOn:
				next = stateDying
			case stateDying:
				next = stateDead
			default:
				if b.cur.CountNeighbors(x, y, stateOn) == 2 {
					next = stateOn
				}
			}
			b.nxt.Set(x, y, next)
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(size core.Size, _ map[string]string) core.Sim {
		return New(size.W, size.H)
	})
}
