package raw

import (
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	errNotEnough = errors.New("raw: not enough image data")
	errTooMuch   = errors.New("raw: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	image *image.Paletted

	tmp [Size]byte
}

func (d *decoder) decode(r io.Reader, p color.Palette, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var extra [1]byte
	if n, err := r.Read(extra[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, Width, Height), p)
	copy(d.image.Pix, d.tmp[:])

	return nil
}

// Decode reads a raw image from r and returns it as an *image.Paletted using
// the palette p. The format carries no palette of its own so the caller must
// supply the one the indices refer to.
func Decode(r io.Reader, p color.Palette) (*image.Paletted, error) {
	var d decoder
	if err := d.decode(r, p, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a raw image after
// checking r holds exactly one image worth of data.
func DecodeConfig(r io.Reader, p color.Palette) (image.Config, error) {
	var d decoder
	if err := d.decode(r, p, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: p,
		Width:      Width,
		Height:     Height,
	}, nil
}
