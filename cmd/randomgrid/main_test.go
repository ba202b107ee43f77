package main

import (
	"path/filepath"
	"testing"
	"time"

	"gridreel/internal/codec"
	"gridreel/pkg/animator"
	pcore "gridreel/pkg/core"
	"gridreel/pkg/grid"
	"gridreel/pkg/visual"
)

func TestRecordFillsEveryCell(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Columns, cfg.Rows = 3, 2
	cfg.CellWidth, cfg.CellHeight = 5, 5
	cfg.Counter = false
	cfg.Background = grid.RGB{R: 255, G: 255, B: 255}

	v, err := record(cfg, pcore.NewRNG(7), visual.Options{Quiet: true})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if v.Len() != 6 {
		t.Fatalf("frames = %d, want 6", v.Len())
	}
	// random components stay below 255, so no cell keeps the white background
	last, err := v.Frame(v.Len() - 1)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			b := cfg.CellBounds(col, row)
			if got := last.RGBAAt(b.X0, b.Y0); got.R == 255 && got.G == 255 && got.B == 255 {
				t.Fatalf("cell (%d,%d) left unfilled", col, row)
			}
		}
	}
}

func TestRecordedGridsCombineWithResize(t *testing.T) {
	cfg := grid.DefaultConfig()
	cfg.Columns, cfg.Rows = 2, 2
	cfg.CellWidth, cfg.CellHeight = 10, 10
	rng := pcore.NewRNG(3)
	a, err := record(cfg, rng, visual.Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	cfg.Columns, cfg.Rows = 4, 4
	cfg.CellWidth, cfg.CellHeight = 5, 5
	b, err := record(cfg, rng, visual.Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "combined.apng")
	job := animator.Job{
		Visuals:       []*visual.Visual{a, b},
		FrameDuration: 100 * time.Millisecond,
		Hold:          200 * time.Millisecond,
		Resize:        a.Size(),
		Options:       visual.Options{Quiet: true},
	}
	if err := animator.Export(out, job); err != nil {
		t.Fatalf("Export: %v", err)
	}
	anim, err := codec.ReadAnimationFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := 4 + 16 + 2; len(anim.Frames) != want {
		t.Fatalf("frames = %d, want %d", len(anim.Frames), want)
	}
	for i, f := range anim.Frames {
		if f.Bounds().Size() != a.Size() {
			t.Fatalf("frame %d size %v, want %v", i, f.Bounds().Size(), a.Size())
		}
	}
}
