package rawimg

import (
	"io"
	"log"
	"path/filepath"
	"testing"
)

func newTestTool(t *testing.T, catalog *Catalog) (*Tool, string) {
	t.Helper()
	return New(catalog, log.New(io.Discard, "", 0)), t.TempDir()
}

func testFile(dir, name string) string {
	return filepath.Join(dir, name)
}
