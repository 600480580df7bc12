package rawimg

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/bodgit/rawimg/raw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePattern(t *testing.T) {
	tool, dir := newTestTool(t, nil)
	bin, debug := testFile(dir, "paltest.bin"), testFile(dir, "debug.txt")

	require.NoError(t, tool.GeneratePattern(bin, debug))

	b, err := os.ReadFile(bin)
	require.NoError(t, err)
	require.Len(t, b, raw.Size)
	assert.Equal(t, byte(0), b[0])
	assert.Equal(t, byte(1), b[20])
	assert.Equal(t, byte(255), b[raw.Width*191+319])

	d, err := os.ReadFile(debug)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(d), "\n"), "\n")
	require.Len(t, lines, raw.Height)
	for y, line := range lines {
		require.Len(t, line, 2*raw.Width)
		for x := 0; x < raw.Width; x++ {
			require.Equal(t, fmt.Sprintf("%02x", b[raw.Width*y+x]), line[2*x:2*x+2])
		}
	}
}

func TestGeneratePatternNoDebug(t *testing.T) {
	tool, dir := newTestTool(t, nil)

	require.NoError(t, tool.GeneratePattern(testFile(dir, "paltest.bin"), ""))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGeneratePatternIdempotent(t *testing.T) {
	tool, dir := newTestTool(t, nil)
	bin := testFile(dir, "paltest.bin")

	require.NoError(t, tool.GeneratePattern(bin, ""))
	first, err := os.ReadFile(bin)
	require.NoError(t, err)

	require.NoError(t, tool.GeneratePattern(bin, ""))
	second, err := os.ReadFile(bin)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestGeneratePatternBadPath(t *testing.T) {
	tool, dir := newTestTool(t, nil)

	assert.Error(t, tool.GeneratePattern(testFile(dir, "missing/paltest.bin"), ""))
}
