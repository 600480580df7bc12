/*
Package pattern generates an image for testing a 256 color palette.

The image is a grid where each cell is filled with a single color index,
starting at 0 in the top-left corner and increasing left to right, top to
bottom. With 320 by 200 pixels and 16 divisions each cell is 20 by 12
pixels. Because 200 is not a multiple of 12 the grid is 16 columns by 16.5
rows. Generation stops once all 256 indices have been used so the trailing
half row is left as color 0.
*/
package pattern

import (
	"image"
	"image/color/palette"

	"github.com/bodgit/rawimg/raw"
)

const (
	divisions  = 16
	numColors  = 256
	cellWidth  = raw.Width / divisions
	cellHeight = raw.Height / divisions
)

func fillCell(m *image.Paletted, x, y int, c uint8) {
	// Column by column within the cell
	for xx := 0; xx < cellWidth; xx++ {
		for yy := 0; yy < cellHeight; yy++ {
			m.SetColorIndex(x+xx, y+yy, c)
		}
	}
}

func fill(m *image.Paletted) {
	c := 0
	for y := 0; y < raw.Height; y += cellHeight {
		for x := 0; x < raw.Width; x += cellWidth {
			fillCell(m, x, y, uint8(c))
			c++
			if c == numColors {
				return
			}
		}
	}
}

// New returns the palette test pattern as a 320 by 200 paletted image. The
// image's Pix slice is laid out so the color index for (x, y) is at
// Pix[320*y+x]. The Plan 9 palette is attached only so the image has a color
// model; the pattern is defined purely by its indices.
func New() *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, raw.Width, raw.Height), palette.Plan9)
	fill(m)
	return m
}
