package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"time"

	"github.com/kettek/apng"
)

// FrameSource yields frames one at a time and returns io.EOF when done.
type FrameSource interface {
	Next() (image.Image, error)
}

// Options controls animated output.
type Options struct {
	// LoopCount is stored in the container's loop field: APNG num_plays or
	// the GIF NETSCAPE repeat count. 0 loops forever in both.
	LoopCount     int
	FrameDuration time.Duration
}

// Animation is a decoded animated image.
type Animation struct {
	Frames    []image.Image
	Delays    []time.Duration
	LoopCount int
}

// WriteAnimation pulls every frame from src and encodes them to w. PNG is
// written as APNG. It returns the number of frames written.
func WriteAnimation(w io.Writer, f Format, src FrameSource, opt Options) (int, error) {
	switch f {
	case PNG, APNG:
		return writeAPNG(w, src, opt)
	case GIF:
		return writeGIF(w, src, opt)
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
}

func writeAPNG(w io.Writer, src FrameSource, opt Options) (int, error) {
	num, den := apngDelay(opt.FrameDuration)
	a := apng.APNG{LoopCount: uint(max(opt.LoopCount, 0))}
	for {
		img, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return len(a.Frames), err
		}
		a.Frames = append(a.Frames, apng.Frame{
			Image:            img,
			DelayNumerator:   num,
			DelayDenominator: den,
		})
	}
	if len(a.Frames) == 0 {
		return 0, ErrNoFrames
	}
	if err := apng.Encode(w, a); err != nil {
		return len(a.Frames), fmt.Errorf("apng.Encode failed: %w", err)
	}
	return len(a.Frames), nil
}

// apngDelay expresses d as a fraction of a second that fits fcTL's uint16
// fields, falling back to centiseconds for long frames.
func apngDelay(d time.Duration) (num, den uint16) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	if ms <= 0xffff {
		return uint16(ms), 1000
	}
	cs := ms / 10
	if cs > 0xffff {
		cs = 0xffff
	}
	return uint16(cs), 100
}

func writeGIF(w io.Writer, src FrameSource, opt Options) (int, error) {
	delay := int((opt.FrameDuration + 5*time.Millisecond) / (10 * time.Millisecond))
	g := &gif.GIF{LoopCount: opt.LoopCount}
	for {
		img, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return len(g.Image), err
		}
		pm := toPaletted(img)
		if len(g.Image) == 0 {
			// no global color table: each frame carries its own local palette
			g.Config = image.Config{Width: pm.Rect.Dx(), Height: pm.Rect.Dy()}
		}
		g.Image = append(g.Image, pm)
		g.Delay = append(g.Delay, delay)
	}
	if len(g.Image) == 0 {
		return 0, ErrNoFrames
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return len(g.Image), fmt.Errorf("gif.EncodeAll failed: %w", err)
	}
	return len(g.Image), nil
}

// WriteStill encodes a single image. APNG is written as a plain PNG.
func WriteStill(w io.Writer, f Format, img image.Image) error {
	switch f {
	case PNG, APNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png.Encode failed: %w", err)
		}
		return nil
	case GIF:
		if err := gif.Encode(w, toPaletted(img), nil); err != nil {
			return fmt.Errorf("gif.Encode failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
}

// ReadAnimation decodes an animation written by WriteAnimation. A plain PNG
// decodes as a single frame.
func ReadAnimation(r io.Reader, f Format) (*Animation, error) {
	switch f {
	case PNG, APNG:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll failed: %w", err)
		}
		a, err := apng.DecodeAll(bytes.NewReader(data))
		if err != nil || len(a.Frames) == 0 {
			img, pngErr := png.Decode(bytes.NewReader(data))
			if pngErr != nil {
				return nil, fmt.Errorf("apng.DecodeAll failed: %w", errors.Join(err, pngErr))
			}
			return &Animation{Frames: []image.Image{img}, Delays: []time.Duration{0}}, nil
		}
		out := &Animation{LoopCount: int(a.LoopCount)}
		for _, fr := range a.Frames {
			if fr.IsDefault && len(a.Frames) > 1 {
				continue
			}
			den := time.Duration(fr.DelayDenominator)
			if den == 0 {
				den = 100
			}
			out.Frames = append(out.Frames, fr.Image)
			out.Delays = append(out.Delays, time.Duration(fr.DelayNumerator)*time.Second/den)
		}
		return out, nil
	case GIF:
		g, err := gif.DecodeAll(r)
		if err != nil {
			return nil, fmt.Errorf("gif.DecodeAll failed: %w", err)
		}
		out := &Animation{LoopCount: g.LoopCount}
		for i, pm := range g.Image {
			out.Frames = append(out.Frames, pm)
			out.Delays = append(out.Delays, time.Duration(g.Delay[i])*10*time.Millisecond)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedFormat, f)
}
