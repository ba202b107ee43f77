// Package life implements Conway's Game of Life as a recordable step source.
package life

import (
	"strconv"

	"gridreel/internal/core"
	pcore "gridreel/pkg/core"
)

// Config holds parameters for the Life simulation.
type Config struct {
	// Density is the chance in 1/Density that a cell starts alive.
	Density int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Density: 2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Density = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int, cfg Config) *Life {
	return &Life{cfg: cfg, cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Set marks a single cell alive or dead.
func (l *Life) Set(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	l.cur.Set(x, y, v)
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := pcore.NewRNG(seed).Source()
	cells := l.cur.Cells()
	for i := range cells {
		cells[i] = 0
		if rng.IntN(l.cfg.Density) == 0 {
			cells[i] = 1
		}
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	for y := 0; y < l.cur.H; y++ {
		for x := 0; x < l.cur.W; x++ {
			neighbors := l.cur.CountNeighbors(x, y, 1)
			alive := l.cur.At(x, y) == 1
			var v uint8
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				v = 1
			}
			l.nxt.Set(x, y, v)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(size core.Size, cfg map[string]string) core.Sim {
		return New(size.W, size.H, FromMap(cfg))
	})
}
