package raw

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

var errTooSmall = errors.New("raw: image is too small")

type encoder struct {
	w io.Writer

	tmp [Size]byte
}

// indexer returns the palette index of the pixel at (x, y) in the source
// image
type indexer func(x, y int) byte

func (e *encoder) encode(b image.Rectangle, at indexer) error {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			e.tmp[Width*y+x] = at(b.Min.X+x, b.Min.Y+y)
		}
	}

	_, err := e.w.Write(e.tmp[:])
	return err
}

func quantizeImage(m image.Image) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Encode writes the Image m to w in raw format. Only the top-left 320 by 200
// pixels of m are written and m must be at least that big.
//
// Paletted images are written using their palette indices and grayscale
// images using their gray level, truncated to a byte for 16-bit gray. Any other image is first quantized down to
// a 256 color palette.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() < Width || b.Dy() < Height {
		return errTooSmall
	}

	var at indexer
	switch pm := m.(type) {
	case *image.Paletted:
		at = pm.ColorIndexAt
	case *image.Gray:
		at = func(x, y int) byte {
			return pm.GrayAt(x, y).Y
		}
	case *image.Gray16:
		// Truncated to the low byte
		at = func(x, y int) byte {
			return uint8(pm.Gray16At(x, y).Y)
		}
	default:
		if cp, ok := m.ColorModel().(color.Palette); ok {
			at = func(x, y int) byte {
				return byte(cp.Index(m.At(x, y)))
			}
		} else {
			at = quantizeImage(m).ColorIndexAt
		}
	}

	e := encoder{w: w}

	return e.encode(b, at)
}
