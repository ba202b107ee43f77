package grid

import (
	"image"
	"math"
)

const (
	// MinCounterBand is the smallest counter band height in pixels.
	MinCounterBand = 15
	// CounterBandRatio is the counter band height relative to the grid height.
	CounterBandRatio = 0.025
)

// Box is an inclusive pixel bounding box.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Rect converts b to a half-open image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1)
}

// Overlaps reports whether b and o share at least one pixel.
func (b Box) Overlaps(o Box) bool {
	return b.X0 <= o.X1 && o.X0 <= b.X1 && b.Y0 <= o.Y1 && o.Y0 <= b.Y1
}

// Gutter returns the pixel gap around each cell, zero without gridlines.
func (c Config) Gutter() int {
	if !c.Gridlines {
		return 0
	}
	return c.GridlineWidth
}

// GridSize returns the pixel extent of the cell area, gridlines included.
func (c Config) GridSize() image.Point {
	g := c.Gutter()
	return image.Point{
		X: c.Columns*c.CellWidth + (c.Columns+1)*g,
		Y: c.Rows*c.CellHeight + (c.Rows+1)*g,
	}
}

// CounterBandHeight returns the height reserved below the grid for the frame
// counter, zero when the counter is disabled.
func (c Config) CounterBandHeight() int {
	if !c.Counter {
		return 0
	}
	band := int(math.Round(CounterBandRatio * float64(c.GridSize().Y)))
	if band < MinCounterBand {
		band = MinCounterBand
	}
	return band
}

// CanvasSize returns the full canvas dimensions, never smaller than 1x1.
func (c Config) CanvasSize() image.Point {
	gs := c.GridSize()
	size := image.Point{X: gs.X, Y: gs.Y + c.CounterBandHeight()}
	if size.X < 1 {
		size.X = 1
	}
	if size.Y < 1 {
		size.Y = 1
	}
	return size
}

// CellBounds maps a cell address to its pixel box. Addresses outside the grid
// yield boxes outside the visible grid. With FlipVertical, row 0 is the bottom
// row; negative rows are mirrored by magnitude.
func (c Config) CellBounds(col, row int) Box {
	if c.FlipVertical {
		if row < 0 {
			row = -row
		}
		row = (c.Rows - 1) - row
	}
	g := c.Gutter()
	x0 := col*c.CellWidth + col*g + g
	y0 := row*c.CellHeight + row*g + g
	return Box{X0: x0, Y0: y0, X1: x0 + c.CellWidth - 1, Y1: y0 + c.CellHeight - 1}
}

// Contains reports whether the cell lies inside the grid.
func (c Config) Contains(cell Cell) bool {
	return cell.Col >= 0 && cell.Col < c.Columns && cell.Row >= 0 && cell.Row < c.Rows
}
