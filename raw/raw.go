/*
Package raw implements a decoder and encoder for headerless 8-bit indexed
images as consumed by VGA mode 13h.

The format is defined as 320 by 200 pixels exactly. Each pixel is stored as
a single byte holding its palette index, written in raster order: left to
right within a row, rows top to bottom. There is no header, no palette and
no compression so the resulting file is always 64000 bytes in size.
*/
package raw

const (
	// Width is the width in pixels of every raw image
	Width = 320
	// Height is the height in pixels of every raw image
	Height = 200
	// Size is the size in bytes of an encoded raw image
	Size = Width * Height
)
