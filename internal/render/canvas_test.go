package render

import (
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func count(img *image.RGBA, r image.Rectangle, want color.RGBA) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestNewCanvasClampsAndFills(t *testing.T) {
	c := NewCanvas(0, -4, white)
	if got := c.Bounds(); got != image.Rect(0, 0, 1, 1) {
		t.Fatalf("Bounds() = %v, want 1x1", got)
	}
	c = NewCanvas(4, 3, red)
	if n := count(c.Image(), c.Bounds(), red); n != 12 {
		t.Fatalf("expected 12 red pixels, got %d", n)
	}
}

func TestFillRectClips(t *testing.T) {
	c := NewCanvas(10, 10, white)
	c.FillRect(image.Rect(8, 8, 20, 20), red)
	if n := count(c.Image(), c.Bounds(), red); n != 4 {
		t.Fatalf("expected clipped 2x2 fill, got %d red pixels", n)
	}
	c.FillRect(image.Rect(30, 30, 40, 40), blue)
	if n := count(c.Image(), c.Bounds(), blue); n != 0 {
		t.Fatalf("off-canvas fill must be a no-op, got %d blue pixels", n)
	}
}

func TestDrawLineAxisAligned(t *testing.T) {
	c := NewCanvas(10, 10, white)
	c.DrawLine(image.Pt(3, 0), image.Pt(3, 9), 2, red)
	if n := count(c.Image(), c.Bounds(), red); n != 20 {
		t.Fatalf("vertical 2px line should cover 20 pixels, got %d", n)
	}
	if n := count(c.Image(), image.Rect(3, 0, 5, 10), red); n != 20 {
		t.Fatalf("vertical line must occupy columns 3-4, got %d pixels there", n)
	}
	c.DrawLine(image.Pt(9, 5), image.Pt(0, 5), 1, blue)
	if n := count(c.Image(), image.Rect(0, 5, 10, 6), blue); n != 10 {
		t.Fatalf("reversed horizontal line should cover row 5, got %d", n)
	}
	c.DrawLine(image.Pt(0, 0), image.Pt(9, 0), 0, blue)
	if c.Image().RGBAAt(0, 0) == blue {
		t.Fatal("zero width line must not draw")
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	c := NewCanvas(5, 5, white)
	c.DrawLine(image.Pt(0, 0), image.Pt(4, 4), 1, red)
	for i := 0; i < 5; i++ {
		if c.Image().RGBAAt(i, i) != red {
			t.Fatalf("diagonal pixel (%d,%d) not drawn", i, i)
		}
	}
	if n := count(c.Image(), c.Bounds(), red); n != 5 {
		t.Fatalf("diagonal should draw 5 pixels, got %d", n)
	}
}

func TestDrawTextStaysInBox(t *testing.T) {
	c := NewCanvas(120, 30, white)
	text := "Frame: 1 / 2"
	c.DrawText(image.Pt(3, 5), text, blue)
	size := TextSize(text)
	box := image.Rectangle{Min: image.Pt(3, 5), Max: image.Pt(3, 5).Add(size)}
	inside := count(c.Image(), box, blue)
	if inside == 0 {
		t.Fatal("text drew no pixels")
	}
	if total := count(c.Image(), c.Bounds(), blue); total != inside {
		t.Fatalf("text leaked outside %v: %d of %d pixels inside", box, inside, total)
	}
}
