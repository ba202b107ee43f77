package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

var snapshotEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// EncodePNG returns img as freshly allocated PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := snapshotEncoder.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("png.Encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodePNG decodes PNG bytes into a new RGBA image.
func DecodePNG(b []byte) (*image.RGBA, error) {
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("png.Decode failed: %w", err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img itself when it already is an *image.RGBA, otherwise a
// converted copy.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

// Resize scales src to size with nearest-neighbor sampling, which keeps cell
// edges crisp.
func Resize(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
