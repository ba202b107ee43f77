// Package render implements the drawing primitives the grid visuals are
// built from: solid fills, thick lines and bitmap text on an RGBA canvas.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextFace is the face used for all canvas text.
var TextFace = basicfont.Face7x13

// Canvas is a mutable RGBA drawing surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w*h canvas filled with fill. Non-positive sizes are
// clamped to one pixel.
func NewCanvas(w, h int, fill color.Color) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	c.FillRect(c.img.Bounds(), fill)
	return c
}

// Wrap returns a Canvas drawing directly onto img.
func Wrap(img *image.RGBA) *Canvas {
	return &Canvas{img: img}
}

// Image exposes the backing image. Callers must not retain it across
// mutations if they need a stable copy.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas bounds.
func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// FillRect paints r, clipped to the canvas, with col.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawLine draws from p0 to p1 inclusive with a square pen of width pixels
// anchored at its top-left corner, so an axis-aligned line covers exactly
// width rows or columns starting at the given coordinate.
func (c *Canvas) DrawLine(p0, p1 image.Point, width int, col color.Color) {
	if width <= 0 {
		return
	}
	src := image.NewUniform(col)
	dx, dy := abs(p1.X-p0.X), -abs(p1.Y-p0.Y)
	sx, sy := sign(p1.X-p0.X), sign(p1.Y-p0.Y)
	if dy == 0 || dx == 0 {
		// axis-aligned: one rectangle is enough
		r := image.Rectangle{Min: p0, Max: p1}.Canon()
		r.Max = r.Max.Add(image.Pt(width, width))
		draw.Draw(c.img, r.Intersect(c.img.Bounds()), src, image.Point{}, draw.Src)
		return
	}
	e := dx + dy
	x, y := p0.X, p0.Y
	for {
		pen := image.Rect(x, y, x+width, y+width).Intersect(c.img.Bounds())
		if !pen.Empty() {
			draw.Draw(c.img, pen, src, image.Point{}, draw.Src)
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// DrawText writes s with its top-left corner at pt.
func (c *Canvas) DrawText(pt image.Point, s string, col color.Color) {
	DrawText(c.img, pt, s, col)
}

// DrawText writes s onto dst with its top-left corner at pt.
func DrawText(dst draw.Image, pt image.Point, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: TextFace,
		Dot:  fixed.P(pt.X, pt.Y+TextFace.Ascent),
	}
	d.DrawString(s)
}

// TextSize returns the pixel size of s in TextFace.
func TextSize(s string) image.Point {
	w := font.MeasureString(TextFace, s)
	return image.Point{X: w.Ceil(), Y: TextFace.Height}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
