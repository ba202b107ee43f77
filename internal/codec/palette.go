package codec

import (
	"image"
	"image/color"
	"image/color/palette"

	"golang.org/x/image/draw"
)

// toPaletted converts img for GIF output. Images with at most 256 distinct
// colors keep them exactly; others are dithered onto the Plan 9 palette.
func toPaletted(img image.Image) *image.Paletted {
	if pm, ok := img.(*image.Paletted); ok {
		return pm
	}
	rgba := ToRGBA(img)
	b := rgba.Bounds()
	if pm := exactPaletted(rgba); pm != nil {
		return pm
	}
	pm := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pm, b, rgba, b.Min)
	return pm
}

func exactPaletted(rgba *image.RGBA) *image.Paletted {
	b := rgba.Bounds()
	index := make(map[color.RGBA]uint8)
	var pal color.Palette
	idx := make([]uint8, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := rgba.RGBAAt(x, y)
			i, ok := index[c]
			if !ok {
				if len(pal) == 256 {
					return nil
				}
				i = uint8(len(pal))
				index[c] = i
				pal = append(pal, c)
			}
			idx = append(idx, i)
		}
	}
	pm := image.NewPaletted(b, pal)
	n := 0
	for y := 0; y < b.Dy(); y++ {
		row := pm.Pix[y*pm.Stride : y*pm.Stride+b.Dx()]
		copy(row, idx[n:n+b.Dx()])
		n += b.Dx()
	}
	return pm
}
