// Package visual records the states of one cell grid as a sequence of frames
// and exports them as an animation with an optional frame counter.
package visual

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"gridreel/internal/codec"
	"gridreel/internal/render"
	"gridreel/pkg/grid"
)

// ErrNoFrames is returned when exporting without any recorded frame.
var ErrNoFrames = errors.New("no frames recorded")

// FrameError locates a failure while producing an output frame.
type FrameError struct {
	Visual int // index of the visual in the exported sequence
	Frame  int // index of the frame in that visual's buffer
	Err    error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("visual %d frame %d: %v", e.Visual, e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// Options controls logging during export.
type Options struct {
	Quiet   bool
	Verbose bool
}

// Visual owns one grid configuration, its live canvas and the frames
// recorded from it. A Visual is not safe for concurrent use.
type Visual struct {
	cfg      grid.Config
	size     image.Point
	gridSize image.Point

	canvas *render.Canvas
	frames FrameBuffer
	hold   time.Duration

	gridlineColor grid.RGB
	counterColor  grid.RGB

	opt Options
}

// New validates cfg and allocates a blank canvas for it. The canvas size is
// derived once here.
func New(cfg grid.Config) (*Visual, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	size := cfg.CanvasSize()
	return &Visual{
		cfg:           cfg,
		size:          size,
		gridSize:      cfg.GridSize(),
		canvas:        render.NewCanvas(size.X, size.Y, cfg.Background),
		gridlineColor: cfg.GridlineColor,
		counterColor:  cfg.CounterColor,
	}, nil
}

// Config returns the configuration the visual was built with.
func (v *Visual) Config() grid.Config { return v.cfg }

// Size returns the canvas size shared by all frames.
func (v *Visual) Size() image.Point { return v.size }

// Len returns the number of recorded frames.
func (v *Visual) Len() int { return v.frames.Len() }

// Hold returns how long the final state is held before the animation loops.
func (v *Visual) Hold() time.Duration { return v.hold }

// SetHold sets how long the final state is held before the animation loops.
func (v *Visual) SetHold(d time.Duration) {
	if d < 0 {
		d = 0
	}
	v.hold = d
}

// SetOptions sets the logging options used by Export.
func (v *Visual) SetOptions(opt Options) { v.opt = opt }

// SetGridlineColor changes the color gridlines are drawn with from the next
// snapshot on.
func (v *Visual) SetGridlineColor(c grid.RGB) { v.gridlineColor = c }

// SetCounterColor changes the frame counter text color.
func (v *Visual) SetCounterColor(c grid.RGB) { v.counterColor = c }

// FillCell paints the cell at (col, row) on the live canvas. Cells outside
// the grid are clipped by the canvas.
func (v *Visual) FillCell(col, row int, fill color.Color) {
	v.canvas.FillRect(v.cfg.CellBounds(col, row).Rect(), fill)
}

// Fill paints cell on the live canvas.
func (v *Visual) Fill(cell grid.Cell, fill color.Color) {
	v.FillCell(cell.Col, cell.Row, fill)
}

// Snapshot records the live canvas as a new frame.
func (v *Visual) Snapshot() error {
	v.drawGridlines()
	frame, err := codec.EncodePNG(v.canvas.Image())
	if err != nil {
		return fmt.Errorf("snapshot %d failed: %w", v.frames.Len(), err)
	}
	v.frames.Append(frame)
	return nil
}

// Truncate drops frames recorded after the first n. Export uses it to
// discard hold frames when writing fails.
func (v *Visual) Truncate(n int) { v.frames.Truncate(n) }

// Frame decodes recorded frame i into a new image.
func (v *Visual) Frame(i int) (*image.RGBA, error) {
	if i < 0 || i >= v.frames.Len() {
		return nil, fmt.Errorf("frame %d out of range [0,%d)", i, v.frames.Len())
	}
	return codec.DecodePNG(v.frames.At(i))
}

// Image returns a copy of the live canvas with gridlines drawn.
func (v *Visual) Image() *image.RGBA {
	v.drawGridlines()
	src := v.canvas.Image()
	img := image.NewRGBA(src.Bounds())
	copy(img.Pix, src.Pix)
	return img
}

// SaveImage writes the live canvas to filename as a still PNG or GIF.
func (v *Visual) SaveImage(filename string) error {
	f, err := codec.FormatFor(filename)
	if err != nil {
		return err
	}
	v.drawGridlines()
	return codec.WriteFileAtomic(filename, func(w io.Writer) error {
		return codec.WriteStill(w, f, v.canvas.Image())
	})
}

// drawGridlines paints the gutters between cells in the current gridline
// color. Cells never overlap gutters, so redrawing is idempotent.
func (v *Visual) drawGridlines() {
	g := v.cfg.Gutter()
	if g <= 0 {
		return
	}
	stepX, stepY := v.cfg.CellWidth+g, v.cfg.CellHeight+g
	bottom, right := v.gridSize.Y-1, v.gridSize.X-1
	for i := 0; i <= v.cfg.Columns; i++ {
		x := i * stepX
		v.canvas.DrawLine(image.Pt(x, 0), image.Pt(x, bottom-g+1), g, v.gridlineColor)
	}
	for i := 0; i <= v.cfg.Rows; i++ {
		y := i * stepY
		v.canvas.DrawLine(image.Pt(0, y), image.Pt(right-g+1, y), g, v.gridlineColor)
	}
}
