package rawimg

import (
	"bytes"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/bodgit/rawimg/raw"
	_ "golang.org/x/image/bmp"
)

// screen returns the first frame of g placed on the GIF's logical screen.
// Any pixels the frame doesn't cover are set to the background index.
func screen(g *gif.GIF) *image.Paletted {
	frame := g.Image[0]

	m := image.NewPaletted(image.Rect(0, 0, g.Config.Width, g.Config.Height), frame.Palette)
	for i := range m.Pix {
		m.Pix[i] = g.BackgroundIndex
	}

	// Copy indices rather than colors so duplicate palette entries survive
	r := frame.Bounds().Intersect(m.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.SetColorIndex(x, y, frame.ColorIndexAt(x, y))
		}
	}

	return m
}

func decode(f io.ReadSeeker) (image.Image, string, error) {
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, "", err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}

	if format != "gif" {
		return image.Decode(f)
	}

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, "", err
	}

	return screen(g), format, nil
}

// Sample reads the image in file and writes its pixel values to out in raw
// format, one byte per pixel. For a GIF the first frame is sampled across
// the whole logical screen.
func (t *Tool) Sample(file, out string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, format, err := decode(f)
	if err != nil {
		return err
	}
	t.logger.Printf("Decoded %s image \"%s\" (%v)\n", format, file, m.Bounds().Size())

	b := new(bytes.Buffer)
	if err := raw.Encode(b, m); err != nil {
		return err
	}

	return t.writeFile(out, b)
}
