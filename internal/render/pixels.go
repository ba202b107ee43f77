package render

import "image/color"

// CellFiller paints a single grid cell.
type CellFiller interface {
	FillCell(col, row int, fill color.Color)
}

// PaintBinary fills every cell of a row-major w-wide grid with on for non-zero
// values and off otherwise.
func PaintBinary(dst CellFiller, w int, cells []uint8, on, off color.Color) {
	if w <= 0 {
		return
	}
	for i, c := range cells {
		if c != 0 {
			dst.FillCell(i%w, i/w, on)
			continue
		}
		dst.FillCell(i%w, i/w, off)
	}
}

// PaintPalette fills every cell of a row-major w-wide grid with the palette
// entry for its value. Values past the end of the palette use the last entry;
// an empty palette leaves the cells untouched.
func PaintPalette(dst CellFiller, w int, cells []uint8, palette []color.RGBA) {
	if w <= 0 || len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		dst.FillCell(i%w, i/w, palette[idx])
	}
}
