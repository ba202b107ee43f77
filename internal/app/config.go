package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters of the viewer window.
type Config struct {
	Title string
	Scale int
	TPS   int
	// FrameDuration replaces the recorded delays when non-zero.
	FrameDuration time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Title: "gridreel", Scale: 1, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window updates per second")
	fs.DurationVar(&c.FrameDuration, "frame", c.FrameDuration, "override the recorded frame duration")
}

func (c *Config) scale() int {
	if c.Scale < 1 {
		return 1
	}
	return c.Scale
}
