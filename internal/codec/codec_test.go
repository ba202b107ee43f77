package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

type sliceSource struct {
	frames []image.Image
	err    error
}

func (s *sliceSource) Next() (image.Image, error) {
	if len(s.frames) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	img := s.frames[0]
	s.frames = s.frames[1:]
	return img, nil
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{"out.apng": APNG, "a/b/OUT.PNG": PNG, "x.gif": GIF}
	for name, want := range cases {
		got, err := FormatFor(name)
		if err != nil || got != want {
			t.Fatalf("FormatFor(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	for _, name := range []string{"out.jpg", "out", "out.webp"} {
		if _, err := FormatFor(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("FormatFor(%q) error = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestPNGRoundTripIsIndependent(t *testing.T) {
	img := solid(4, 4, red)
	img.SetRGBA(1, 2, blue)
	b, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img.SetRGBA(0, 0, blue)

	got, err := DecodePNG(b)
	if err != nil {
		t.Fatalf("DecodePNG failed: %v", err)
	}
	if got.RGBAAt(1, 2) != blue || got.RGBAAt(0, 0) != red {
		t.Fatalf("decoded pixels (1,2)=%v (0,0)=%v", got.RGBAAt(1, 2), got.RGBAAt(0, 0))
	}
	if _, err := DecodePNG([]byte("not a png")); err == nil {
		t.Fatal("DecodePNG must fail on garbage")
	}
}

func TestResizeNearestNeighbor(t *testing.T) {
	img := solid(2, 2, red)
	img.SetRGBA(1, 1, blue)
	out := Resize(img, image.Pt(8, 8))
	if out.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("Bounds() = %v", out.Bounds())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := red
			if x >= 4 && y >= 4 {
				want = blue
			}
			if got := out.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v (no interpolation)", x, y, got, want)
			}
		}
	}
}

func TestWriteAnimationAPNG(t *testing.T) {
	buf := &bytes.Buffer{}
	src := &sliceSource{frames: []image.Image{solid(3, 2, red), solid(3, 2, blue), solid(3, 2, red)}}
	n, err := WriteAnimation(buf, APNG, src, Options{LoopCount: 2, FrameDuration: 120 * time.Millisecond})
	if err != nil {
		t.Fatalf("WriteAnimation failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("wrote %d frames, want 3", n)
	}
	a, err := ReadAnimation(buf, APNG)
	if err != nil {
		t.Fatalf("ReadAnimation failed: %v", err)
	}
	if len(a.Frames) != 3 || a.LoopCount != 2 {
		t.Fatalf("decoded %d frames loop %d", len(a.Frames), a.LoopCount)
	}
	if a.Delays[1] != 120*time.Millisecond {
		t.Fatalf("delay = %v, want 120ms", a.Delays[1])
	}
	if got := rgbaAt(a.Frames[1], 0, 0); got != blue {
		t.Fatalf("frame 1 pixel = %v, want blue", got)
	}
}

func TestWriteAnimationGIF(t *testing.T) {
	buf := &bytes.Buffer{}
	f0 := solid(4, 4, red)
	f0.SetRGBA(3, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src := &sliceSource{frames: []image.Image{f0, solid(4, 4, blue)}}
	n, err := WriteAnimation(buf, GIF, src, Options{FrameDuration: 100 * time.Millisecond})
	if err != nil || n != 2 {
		t.Fatalf("WriteAnimation = %d, %v", n, err)
	}
	a, err := ReadAnimation(buf, GIF)
	if err != nil {
		t.Fatalf("ReadAnimation failed: %v", err)
	}
	if len(a.Frames) != 2 || a.Delays[0] != 100*time.Millisecond {
		t.Fatalf("decoded %d frames, delays %v", len(a.Frames), a.Delays)
	}
	if got := rgbaAt(a.Frames[0], 3, 3); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("exact palette lost color: %v", got)
	}
	if got := rgbaAt(a.Frames[1], 0, 0); got != blue {
		t.Fatalf("frame 1 pixel = %v, want blue", got)
	}
}

func TestWriteAnimationErrors(t *testing.T) {
	if _, err := WriteAnimation(io.Discard, APNG, &sliceSource{}, Options{}); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("empty APNG error = %v, want ErrNoFrames", err)
	}
	if _, err := WriteAnimation(io.Discard, GIF, &sliceSource{}, Options{}); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("empty GIF error = %v, want ErrNoFrames", err)
	}
	boom := errors.New("boom")
	src := &sliceSource{frames: []image.Image{solid(1, 1, red)}, err: boom}
	if _, err := WriteAnimation(io.Discard, GIF, src, Options{}); !errors.Is(err, boom) {
		t.Fatalf("source error must propagate, got %v", err)
	}
	if _, err := WriteAnimation(io.Discard, Format(42), &sliceSource{}, Options{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("unknown format error = %v", err)
	}
}

func TestToPalettedFallsBackBeyond256Colors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 12), G: uint8(y * 12), B: 7, A: 255})
		}
	}
	pm := toPaletted(img)
	if len(pm.Palette) > 256 || pm.Bounds() != img.Bounds() {
		t.Fatalf("palette size %d bounds %v", len(pm.Palette), pm.Bounds())
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := WriteFileAtomic(path, func(w io.Writer) error {
		return WriteStill(w, PNG, solid(2, 2, red))
	}); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	a, err := ReadAnimationFile(path)
	if err != nil {
		t.Fatalf("ReadAnimationFile failed: %v", err)
	}
	if len(a.Frames) != 1 || rgbaAt(a.Frames[0], 1, 1) != red {
		t.Fatalf("unexpected still: %d frames", len(a.Frames))
	}

	failed := filepath.Join(dir, "failed.gif")
	boom := errors.New("boom")
	if err := WriteFileAtomic(failed, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("WriteFileAtomic error = %v, want boom", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.png" {
		t.Fatalf("failed write left files behind: %v", entries)
	}
}
