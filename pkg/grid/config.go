// Package grid describes the geometry and styling of a cell grid and maps
// cell coordinates to pixel regions on the rendered canvas.
package grid

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a Config that cannot produce a usable canvas.
var ErrInvalidConfig = errors.New("invalid grid config")

// Config controls the grid dimensions and styling.
type Config struct {
	Columns    int `yaml:"columns"`
	Rows       int `yaml:"rows"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`

	Gridlines     bool `yaml:"gridlines"`
	GridlineWidth int  `yaml:"gridline_width"`
	GridlineColor RGB  `yaml:"gridline_color"`
	Background    RGB  `yaml:"background"`

	Counter      bool `yaml:"counter"`
	CounterColor RGB  `yaml:"counter_color"`

	FlipVertical bool `yaml:"flip_vertical"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Columns:       20,
		Rows:          20,
		CellWidth:     40,
		CellHeight:    40,
		GridlineWidth: 1,
		GridlineColor: RGB{},
		Background:    RGB{R: 255, G: 255, B: 255},
		Counter:       true,
		CounterColor:  RGB{},
	}
}

// Validate reports ErrInvalidConfig for non-positive cell counts or sizes and
// negative gridline widths.
func (c Config) Validate() error {
	switch {
	case c.Columns <= 0 || c.Rows <= 0:
		return fmt.Errorf("%w: %d x %d cells", ErrInvalidConfig, c.Columns, c.Rows)
	case c.CellWidth <= 0 || c.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %d x %d", ErrInvalidConfig, c.CellWidth, c.CellHeight)
	case c.GridlineWidth < 0:
		return fmt.Errorf("%w: gridline width %d", ErrInvalidConfig, c.GridlineWidth)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*dst = parsed
			}
		}
	}
	colour := func(key string, dst *RGB) {
		if v, ok := cfg[key]; ok {
			if parsed, err := ParseColor(v); err == nil {
				*dst = parsed
			}
		}
	}
	positive("columns", &c.Columns)
	positive("rows", &c.Rows)
	positive("cell_width", &c.CellWidth)
	positive("cell_height", &c.CellHeight)
	boolean("gridlines", &c.Gridlines)
	if v, ok := cfg["gridline_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.GridlineWidth = parsed
		}
	}
	colour("gridline_color", &c.GridlineColor)
	colour("background", &c.Background)
	boolean("counter", &c.Counter)
	colour("counter_color", &c.CounterColor)
	boolean("flip_vertical", &c.FlipVertical)
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Columns, "cols", c.Columns, "number of cell columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of cell rows")
	fs.IntVar(&c.CellWidth, "cell-w", c.CellWidth, "cell width in pixels")
	fs.IntVar(&c.CellHeight, "cell-h", c.CellHeight, "cell height in pixels")
	fs.BoolVar(&c.Gridlines, "gridlines", c.Gridlines, "draw gridlines between cells")
	fs.IntVar(&c.GridlineWidth, "gridline-width", c.GridlineWidth, "gridline width in pixels")
	fs.Var(&c.GridlineColor, "gridline-color", "gridline color: name, #rrggbb or r,g,b")
	fs.Var(&c.Background, "bg", "background color: name, #rrggbb or r,g,b")
	fs.BoolVar(&c.Counter, "counter", c.Counter, "draw a frame counter below the grid")
	fs.Var(&c.CounterColor, "counter-color", "frame counter text color")
	fs.BoolVar(&c.FlipVertical, "flip", c.FlipVertical, "put row 0 at the bottom")
}

// ParseConfig decodes YAML on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("yaml.Unmarshal failed: %w", err)
	}
	return c, nil
}

// LoadConfig reads a YAML grid description from path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("os.ReadFile %q failed: %w", path, err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("ParseConfig %q failed: %w", path, err)
	}
	return c, nil
}
