// Package cli holds the flag handling shared by the recording commands.
package cli

import (
	"flag"
	"fmt"
	"log"
	"time"

	"gridreel/internal/app"
	"gridreel/internal/codec"
	"gridreel/pkg/grid"
	"gridreel/pkg/visual"
)

// Common carries the flags every recording command accepts.
type Common struct {
	ConfigPath string
	Out        string
	Duration   time.Duration
	Hold       time.Duration
	Loop       int
	Quiet      bool
	Verbose    bool
	Show       bool

	Grid grid.Config
	View *app.Config
}

// NewCommon returns defaults for a command writing to out.
func NewCommon(out string, cfg grid.Config) *Common {
	return &Common{
		Out:      out,
		Duration: 100 * time.Millisecond,
		Grid:     cfg,
		View:     app.NewConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Common) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML grid description, flags override it")
	fs.StringVar(&c.Out, "out", c.Out, "output file (.apng, .png or .gif)")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "duration of each frame")
	fs.DurationVar(&c.Hold, "hold", c.Hold, "how long the final frame is held")
	fs.IntVar(&c.Loop, "loop", c.Loop, "loop count written to the file, 0 loops forever")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress progress output")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every processed frame")
	fs.BoolVar(&c.Show, "show", c.Show, "play the result in a window (ebiten build)")
	c.Grid.Bind(fs)
	c.View.Bind(fs)
}

// Parse parses args. When -config names a file, its grid description
// replaces the defaults and explicitly set flags are applied on top.
func (c *Common) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return nil
	}
	set := map[string]string{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
	loaded, err := grid.LoadConfig(c.ConfigPath)
	if err != nil {
		return err
	}
	c.Grid = loaded
	for name, value := range set {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply -%s failed: %w", name, err)
		}
	}
	return nil
}

// Options returns the visual logging options selected by the flags.
func (c *Common) Options() visual.Options {
	return visual.Options{Quiet: c.Quiet, Verbose: c.Verbose}
}

// NewVisual creates a visual from the parsed grid description.
func (c *Common) NewVisual() (*visual.Visual, error) {
	v, err := visual.New(c.Grid)
	if err != nil {
		return nil, err
	}
	v.SetOptions(c.Options())
	v.SetHold(c.Hold)
	return v, nil
}

// Finish plays the written file when -show is set.
func (c *Common) Finish() error {
	if !c.Show {
		return nil
	}
	anim, err := codec.ReadAnimationFile(c.Out)
	if err != nil {
		return err
	}
	if c.View.FrameDuration == 0 {
		c.View.FrameDuration = c.Duration
	}
	if err := app.Play(anim, c.View); err != nil {
		return fmt.Errorf("app.Play failed: %w", err)
	}
	if !c.Quiet {
		log.Printf("viewer closed")
	}
	return nil
}
