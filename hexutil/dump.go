// Package hexutil formats byte ranges as a classic hex dump: 16 bytes per
// line, an offset prefix, hex columns and an ASCII gutter with '.'
// standing in for non-printable bytes.
package hexutil

import (
	"fmt"
	"io"
	"strings"
)

const bytesPerLine = 16

// Dump writes data formatted as a hex dump to w, labeling the first byte
// as being at logical address start.
func Dump(w io.Writer, start uint32, data []byte) error {
	for off := 0; off < len(data); off += bytesPerLine {
		end := off + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[off:end]

		var hex strings.Builder
		var ascii strings.Builder
		for i := 0; i < bytesPerLine; i++ {
			if i < len(line) {
				fmt.Fprintf(&hex, "%02X ", line[i])
				b := line[i]
				if b >= 0x20 && b <= 0x7E {
					ascii.WriteByte(b)
				} else {
					ascii.WriteByte('.')
				}
			} else {
				hex.WriteString("   ")
			}
		}

		if _, err := fmt.Fprintf(w, "%08X: %s| %s\n", int(start)+off, hex.String(), ascii.String()); err != nil {
			return err
		}
	}
	return nil
}

// DumpString is a convenience wrapper returning the formatted dump as a
// string, for callers that don't already have an io.Writer on hand (the
// REPL, tests).
func DumpString(start uint32, data []byte) string {
	var b strings.Builder
	_ = Dump(&b, start, data)
	return b.String()
}
