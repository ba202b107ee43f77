package main

import (
	"image/color"
	"testing"

	_ "gridreel/internal/sims/briansbrain"
	_ "gridreel/internal/sims/elementary"
	_ "gridreel/internal/sims/life"
	"gridreel/pkg/grid"
	"gridreel/pkg/visual"
)

func reelConfig() grid.Config {
	cfg := grid.DefaultConfig()
	cfg.Columns, cfg.Rows = 8, 4
	cfg.CellWidth, cfg.CellHeight = 2, 2
	cfg.Counter = false
	cfg.Background = grid.RGB{}
	return cfg
}

func TestRecordElementary(t *testing.T) {
	rl := reel{
		name:   "elementary",
		cfg:    reelConfig(),
		params: map[string]string{"rule": "90"},
		steps:  2,
		on:     grid.RGB{R: 255},
		opt:    visual.Options{Quiet: true},
	}
	v, err := recordSim(rl)
	if err != nil {
		t.Fatalf("recordSim: %v", err)
	}
	if v.Len() != 3 {
		t.Fatalf("frames = %d, want 3", v.Len())
	}
	first, err := v.Frame(0)
	if err != nil {
		t.Fatal(err)
	}
	// the seed cell sits in the middle of the top row
	b := rl.cfg.CellBounds(4, 0)
	if got := first.RGBAAt(b.X0, b.Y0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("seed cell = %v", got)
	}
	b = rl.cfg.CellBounds(0, 0)
	if got := first.RGBAAt(b.X0, b.Y0); got != (color.RGBA{A: 255}) {
		t.Fatalf("empty cell = %v", got)
	}
}

func TestRecordAllKeepsOrder(t *testing.T) {
	var reels []reel
	for _, name := range []string{"life", "briansbrain", "elementary"} {
		reels = append(reels, reel{name: name, cfg: reelConfig(), seed: 1, steps: 1, opt: visual.Options{Quiet: true}})
	}
	reels[2].steps = 4
	visuals, err := recordAll(reels, 3)
	if err != nil {
		t.Fatalf("recordAll: %v", err)
	}
	if len(visuals) != 3 || visuals[2].Len() != 5 || visuals[0].Len() != 2 {
		t.Fatalf("unexpected visuals: %d", len(visuals))
	}
}

func TestRecordUnknownSim(t *testing.T) {
	reels := []reel{{name: "nope", cfg: reelConfig()}}
	if _, err := recordAll(reels, 0); err == nil {
		t.Fatal("expected error for unknown sim")
	}
}

func TestKVListMap(t *testing.T) {
	var l kvList
	for _, s := range []string{"rule=30", "bad", " density = 3 "} {
		if err := l.Set(s); err != nil {
			t.Fatal(err)
		}
	}
	m := l.Map()
	if len(m) != 2 || m["rule"] != "30" || m["density"] != "3" {
		t.Fatalf("map = %v", m)
	}
}
