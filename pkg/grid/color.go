package grid

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RGB is an opaque 8-bit color. It satisfies color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.ToRGBA().RGBA()
}

// ToRGBA returns c as a fully opaque color.RGBA.
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String formats c as "r,g,b", the same form Set accepts.
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Set parses a color name, "#rrggbb" or "r,g,b". It makes *RGB a flag.Value.
func (c *RGB) Set(s string) error {
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalYAML accepts a scalar understood by ParseColor or a sequence of
// three integers.
func (c *RGB) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return c.Set(value.Value)
	case yaml.SequenceNode:
		var parts []int
		if err := value.Decode(&parts); err != nil {
			return fmt.Errorf("line %d: decode color sequence failed: %w", value.Line, err)
		}
		if len(parts) != 3 {
			return fmt.Errorf("line %d: color needs 3 components, got %d", value.Line, len(parts))
		}
		parsed, err := fromComponents(parts[0], parts[1], parts[2])
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("line %d: unsupported color node", value.Line)
}

// MarshalYAML writes c as a three element sequence.
func (c RGB) MarshalYAML() (interface{}, error) {
	return []int{int(c.R), int(c.G), int(c.B)}, nil
}

// ParseColor parses a color name from the named table, "#rrggbb" or "r,g,b".
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := ColorByName(s); ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return RGB{}, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("unknown color %q", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("invalid color component %q: %w", p, err)
		}
		vals[i] = v
	}
	return fromComponents(vals[0], vals[1], vals[2])
}

func fromComponents(r, g, b int) (RGB, error) {
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("color component %d out of range 0-255", v)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

var namedColors = map[string]RGB{
	"red":     {R: 255, G: 0, B: 0},
	"orange":  {R: 255, G: 128, B: 0},
	"yellow":  {R: 255, G: 255, B: 0},
	"green":   {R: 0, G: 255, B: 0},
	"cyan":    {R: 0, G: 255, B: 255},
	"blue":    {R: 0, G: 0, B: 255},
	"purple":  {R: 127, G: 0, B: 255},
	"magenta": {R: 255, G: 0, B: 127},
	"black":   {R: 0, G: 0, B: 0},
	"gray":    {R: 128, G: 128, B: 128},
	"white":   {R: 255, G: 255, B: 255},
}

var colorNames = sortedColorNames()

func sortedColorNames() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ColorByName looks up a color in the named table.
func ColorByName(name string) (RGB, bool) {
	c, ok := namedColors[name]
	return c, ok
}

// ColorNames lists the named colors in alphabetical order.
func ColorNames() []string {
	return append([]string(nil), colorNames...)
}
