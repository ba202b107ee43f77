// Package elementary implements one-dimensional Wolfram automata whose
// history scrolls down the grid.
package elementary

import (
	"strconv"

	"gridreel/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Rule uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
type Elementary struct {
	rule uint8
	grid *core.ByteGrid
	tmp  []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	g := core.NewByteGrid(w, h)
	return &Elementary{rule: rule, grid: g, tmp: make([]uint8, g.W)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(int64) {
	e.grid.Clear()
	e.grid.Set(e.grid.W/2, 0, 1)
}

// Step computes the next generation into the top row and scrolls history
// downwards.
func (e *Elementary) Step() {
	w := e.grid.W
	cells := e.grid.Cells()
	copy(e.tmp, cells[:w])
	copy(cells[w:], cells[:len(cells)-w])
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		cells[x] = (e.rule >> idx) & 1
	}
}

func init() {
	core.Register("elementary", func(size core.Size, cfg map[string]string) core.Sim {
		return New(size.W, size.H, FromMap(cfg).Rule)
	})
}
