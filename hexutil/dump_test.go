package hexutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BojanFaletic/codex-eeprom-emulation/hexutil"
)

func TestDumpFormatsSingleLine(t *testing.T) {
	data := []byte("Hello, World!")
	out := hexutil.DumpString(0, data)

	require.True(t, strings.HasPrefix(out, "00000000: "))
	require.Contains(t, out, "48 65 6C 6C 6F")
	require.Contains(t, out, "| Hello, World!")
}

func TestDumpReplacesNonPrintableWithDot(t *testing.T) {
	out := hexutil.DumpString(0, []byte{0x00, 0x41, 0x7F})
	require.Contains(t, out, "| .A.")
}

func TestDumpHonorsStartOffset(t *testing.T) {
	out := hexutil.DumpString(0x20, []byte{1, 2, 3})
	require.True(t, strings.HasPrefix(out, "00000020: "))
}

func TestDumpMultipleLines(t *testing.T) {
	data := make([]byte, 20)
	for i := range data {
		data[i] = byte(i)
	}
	out := hexutil.DumpString(0, data)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[1], "00000010: "))
}
