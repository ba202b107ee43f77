package grid

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Columns = 0 },
		func(c *Config) { c.Rows = -1 },
		func(c *Config) { c.CellWidth = 0 },
		func(c *Config) { c.CellHeight = -3 },
		func(c *Config) { c.GridlineWidth = -1 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("case %d: Validate() = %v, want ErrInvalidConfig", i, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"columns":        "5",
		"rows":           "-2",
		"cell_width":     "12",
		"gridlines":      "true",
		"gridline_width": "3",
		"background":     "black",
		"counter":        "nope",
		"counter_color":  "#ff8000",
		"flip_vertical":  "1",
	})
	def := DefaultConfig()
	if cfg.Columns != 5 || cfg.Rows != def.Rows || cfg.CellWidth != 12 {
		t.Fatalf("unexpected dimensions: %+v", cfg)
	}
	if !cfg.Gridlines || cfg.GridlineWidth != 3 || !cfg.FlipVertical {
		t.Fatalf("unexpected flags: %+v", cfg)
	}
	if cfg.Counter != def.Counter {
		t.Fatalf("invalid bool must keep default, got %v", cfg.Counter)
	}
	if cfg.Background != (RGB{}) || cfg.CounterColor != (RGB{R: 255, G: 128}) {
		t.Fatalf("unexpected colors: bg=%v counter=%v", cfg.Background, cfg.CounterColor)
	}
}

func TestBind(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cols", "7", "-gridlines", "-bg", "10,20,30", "-gridline-color", "cyan"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Columns != 7 || !cfg.Gridlines {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Background != (RGB{R: 10, G: 20, B: 30}) || cfg.GridlineColor != (RGB{G: 255, B: 255}) {
		t.Fatalf("color flags not applied: %+v", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	data := []byte(`columns: 4
rows: 3
cell_width: 8
gridlines: true
gridline_color: [1, 2, 3]
background: gray
counter: false
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Columns != 4 || cfg.Rows != 3 || cfg.CellWidth != 8 || cfg.CellHeight != DefaultConfig().CellHeight {
		t.Fatalf("unexpected dimensions: %+v", cfg)
	}
	if cfg.GridlineColor != (RGB{1, 2, 3}) || cfg.Background != (RGB{128, 128, 128}) || cfg.Counter {
		t.Fatalf("unexpected styling: %+v", cfg)
	}

	if _, err := ParseConfig([]byte("background: [1, 2]\n")); err == nil {
		t.Fatal("two-component color must fail")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must fail")
	}
}

func TestParseColor(t *testing.T) {
	cases := map[string]RGB{
		"red":         {R: 255},
		" Blue ":      {B: 255},
		"#102030":     {R: 0x10, G: 0x20, B: 0x30},
		"0, 100, 255": {G: 100, B: 255},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseColor(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"", "chartreuse", "#12345", "1,2", "1,2,256", "a,b,c"} {
		if _, err := ParseColor(in); err == nil {
			t.Fatalf("ParseColor(%q) should fail", in)
		}
	}
	if !slices.IsSorted(ColorNames()) || len(ColorNames()) != 11 {
		t.Fatalf("ColorNames() = %v", ColorNames())
	}
}
