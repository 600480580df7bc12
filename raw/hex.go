package raw

import (
	"bufio"
	"encoding/hex"
	"image"
	"io"
)

// WriteHex writes a human readable dump of m to w. Each row of pixels
// becomes one line holding the two digit lowercase hexadecimal value of
// every palette index in the row.
func WriteHex(w io.Writer, m *image.Paletted) error {
	b := m.Bounds()
	bw := bufio.NewWriter(w)
	line := make([]byte, hex.EncodedLen(b.Dx())+1)
	line[len(line)-1] = '\n'
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := m.PixOffset(b.Min.X, y)
		hex.Encode(line, m.Pix[i:i+b.Dx()])
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
