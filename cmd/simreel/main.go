// Command simreel records registered cellular automata into an animation,
// one visual per simulation, played back to back.
package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"strings"

	"gridreel/internal/cli"
	_ "gridreel/internal/sims/briansbrain"
	_ "gridreel/internal/sims/elementary"
	_ "gridreel/internal/sims/life"
	"gridreel/pkg/animator"
	"gridreel/pkg/grid"
)

func main() {
	cfg := grid.DefaultConfig()
	cfg.Columns, cfg.Rows = 64, 64
	cfg.CellWidth, cfg.CellHeight = 6, 6
	cfg.Background = grid.RGB{}
	cfg.CounterColor = grid.RGB{R: 255, G: 255, B: 255}
	common := cli.NewCommon("simreel.gif", cfg)

	sims := "life"
	steps := 60
	workers := runtime.NumCPU()
	seed := int64(42)
	on := grid.RGB{R: 255, G: 255, B: 255}
	var params kvList
	flag.StringVar(&sims, "sims", sims, "comma separated simulations to record")
	flag.IntVar(&steps, "steps", steps, "generations recorded per simulation")
	flag.IntVar(&workers, "workers", workers, "simulations recorded in parallel")
	flag.Int64Var(&seed, "seed", seed, "seed for simulation reset")
	flag.Var(&on, "on", "color of live cells in two-state simulations")
	flag.Var(&params, "set", "simulation parameter in key=value form (repeatable)")
	common.Bind(flag.CommandLine)
	if err := common.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	var reels []reel
	for _, name := range strings.Split(sims, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		reels = append(reels, reel{
			name:   name,
			cfg:    common.Grid,
			params: params.Map(),
			seed:   seed,
			steps:  steps,
			on:     on,
			opt:    common.Options(),
		})
	}
	if !common.Quiet {
		log.Printf("recording %d simulations (%d workers, %d steps)", len(reels), workers, steps)
	}
	visuals, err := recordAll(reels, workers)
	if err != nil {
		log.Fatal(err)
	}
	job := animator.Job{
		Visuals:       visuals,
		FrameDuration: common.Duration,
		Hold:          common.Hold,
		LoopCount:     common.Loop,
		Options:       common.Options(),
	}
	if err := animator.Export(common.Out, job); err != nil {
		log.Fatal(err)
	}
	if err := common.Finish(); err != nil {
		log.Fatal(err)
	}
}
