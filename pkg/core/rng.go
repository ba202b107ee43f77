// Package core provides deterministic randomness for demos and simulations.
package core

import (
	"math/rand/v2"

	"gridreel/pkg/grid"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Uint8n returns a random uint8 in [0, n).
func (r *RNG) Uint8n(n uint8) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(r.r.IntN(int(n)))
}

// Color returns a random opaque color with every component in [0, 255).
func (r *RNG) Color() grid.RGB {
	return grid.RGB{R: r.Uint8n(255), G: r.Uint8n(255), B: r.Uint8n(255)}
}

// Shuffle randomizes the order of cells in place.
func (r *RNG) Shuffle(cells []grid.Cell) {
	r.r.Shuffle(len(cells), func(i, j int) { cells[i], cells[j] = cells[j], cells[i] })
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
