/*
Package rawimg generates raw 8-bit indexed images for testing a 256 color
VGA palette rendering pipeline, either by synthesising a palette test
pattern or by sampling the pixels of an existing image.
*/
package rawimg

import (
	"bytes"
	"log"
	"os"
)

// Tool writes raw images to disk, optionally recording each file written in
// a Catalog.
type Tool struct {
	catalog *Catalog
	logger  *log.Logger
}

// New returns a Tool that logs to logger. catalog may be nil in which case
// nothing is recorded.
func New(catalog *Catalog, logger *log.Logger) *Tool {
	return &Tool{
		catalog: catalog,
		logger:  logger,
	}
}

func (t *Tool) writeFile(file string, b *bytes.Buffer) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(b.Bytes()); err != nil {
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	t.logger.Printf("Wrote %d bytes to \"%s\"\n", b.Len(), file)

	if t.catalog != nil {
		return t.catalog.Record(file, b.Bytes())
	}

	return nil
}
