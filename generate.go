package rawimg

import (
	"bytes"

	"github.com/bodgit/rawimg/pattern"
	"github.com/bodgit/rawimg/raw"
)

// GeneratePattern writes the palette test pattern to binFile in raw format.
// If debugFile is not empty a hexadecimal dump of the pattern is also
// written to it.
func (t *Tool) GeneratePattern(binFile, debugFile string) error {
	m := pattern.New()

	b := new(bytes.Buffer)
	if err := raw.Encode(b, m); err != nil {
		return err
	}
	if err := t.writeFile(binFile, b); err != nil {
		return err
	}

	if debugFile == "" {
		return nil
	}

	b.Reset()
	if err := raw.WriteHex(b, m); err != nil {
		return err
	}

	return t.writeFile(debugFile, b)
}
