// Command randomgrid fills two grids cell by cell with random colors and
// combines them into one animation.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gridreel/internal/cli"
	"gridreel/pkg/animator"
	pcore "gridreel/pkg/core"
	"gridreel/pkg/grid"
	"gridreel/pkg/visual"
)

func main() {
	cfg := grid.DefaultConfig()
	cfg.Columns, cfg.Rows = 5, 5
	cfg.Gridlines = true
	cfg.Background = grid.RGB{}
	cfg.CounterColor = grid.RGB{R: 255, G: 255, B: 255}
	common := cli.NewCommon("randomgrid.apng", cfg)
	common.Hold = 500 * time.Millisecond

	seed := int64(1)
	second := 10
	flag.Int64Var(&seed, "seed", seed, "random seed")
	flag.IntVar(&second, "second", second, "columns and rows of the second grid")
	common.Bind(flag.CommandLine)
	if err := common.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	rng := pcore.NewRNG(seed)
	first, err := record(common.Grid, rng, common.Options())
	if err != nil {
		log.Fatal(err)
	}
	cfg2 := common.Grid
	cfg2.Columns, cfg2.Rows = second, second
	cfg2.CellWidth = max(1, common.Grid.CellWidth*common.Grid.Columns/max(second, 1))
	cfg2.CellHeight = max(1, common.Grid.CellHeight*common.Grid.Rows/max(second, 1))
	next, err := record(cfg2, rng, common.Options())
	if err != nil {
		log.Fatal(err)
	}

	job := animator.Job{
		Visuals:       []*visual.Visual{first, next},
		FrameDuration: common.Duration,
		Hold:          common.Hold,
		LoopCount:     common.Loop,
		Options:       common.Options(),
	}
	if first.Size() != next.Size() {
		job.Resize = first.Size()
	}
	if err := animator.Export(common.Out, job); err != nil {
		log.Fatal(err)
	}
	if err := common.Finish(); err != nil {
		log.Fatal(err)
	}
}

// record fills every cell of a fresh visual in random order, recoloring the
// gridlines to match each new fill.
func record(cfg grid.Config, rng *pcore.RNG, opt visual.Options) (*visual.Visual, error) {
	v, err := visual.New(cfg)
	if err != nil {
		return nil, err
	}
	v.SetOptions(opt)
	cells := make([]grid.Cell, 0, cfg.Columns*cfg.Rows)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			cells = append(cells, grid.Cell{Col: col, Row: row})
		}
	}
	rng.Shuffle(cells)
	for _, c := range cells {
		col := rng.Color()
		v.Fill(c, col)
		v.SetGridlineColor(col)
		if err := v.Snapshot(); err != nil {
			return nil, err
		}
	}
	return v, nil
}
