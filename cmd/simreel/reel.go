package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gridreel/internal/core"
	"gridreel/internal/render"
	"gridreel/pkg/grid"
	"gridreel/pkg/visual"
)

// kvList collects repeated key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the collected pairs. Entries without '=' are ignored.
func (l kvList) Map() map[string]string {
	out := map[string]string{}
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

type reel struct {
	name   string
	cfg    grid.Config
	params map[string]string
	seed   int64
	steps  int
	on     grid.RGB
	opt    visual.Options
}

// recordSim runs one simulation for rl.steps generations, recording the
// initial state and every generation into a new visual.
func recordSim(rl reel) (*visual.Visual, error) {
	factory, ok := core.Sims()[rl.name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", rl.name, strings.Join(core.SimNames(), ", "))
	}
	v, err := visual.New(rl.cfg)
	if err != nil {
		return nil, err
	}
	v.SetOptions(rl.opt)
	sim := factory(core.Size{W: rl.cfg.Columns, H: rl.cfg.Rows}, rl.params)
	sim.Reset(rl.seed)
	for i := 0; i <= rl.steps; i++ {
		if i > 0 {
			sim.Step()
		}
		paint(v, sim, rl)
		if err := v.Snapshot(); err != nil {
			return nil, fmt.Errorf("%s generation %d: %w", rl.name, i, err)
		}
	}
	return v, nil
}

func paint(v *visual.Visual, sim core.Sim, rl reel) {
	w := sim.Size().W
	if p, ok := sim.(core.Paletted); ok {
		render.PaintPalette(v, w, sim.Cells(), p.Palette())
		return
	}
	render.PaintBinary(v, w, sim.Cells(), rl.on, rl.cfg.Background)
}

// recordAll records every reel on a pool of workers. The visuals keep the
// order of reels.
func recordAll(reels []reel, workers int) ([]*visual.Visual, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]*visual.Visual, len(reels))
	errs := make([]error, len(reels))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out[idx], errs[idx] = recordSim(reels[idx])
			}
		}()
	}
	for i := range reels {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
