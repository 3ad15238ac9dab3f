// Package driver is the integration seam for a real low-level flash
// driver sitting between the eeprom engine and a platform SPI/QSPI NOR
// chip. There's no hardware (or chip simulator) in this environment to
// drive it, so Bridge wraps the generic I/O primitives a real driver
// would expose — ReaderAt/WriterAt plus a sector-erase hook — rather than
// a specific chip's register protocol.
package driver

import (
	"fmt"
	"io"

	"github.com/BojanFaletic/codex-eeprom-emulation/flash"
)

// SectorEraser is the one flash primitive with no stdlib analog: setting
// every byte of a sector to 0xFF. A real driver implements this as a
// chip-erase command; Bridge defers to whatever is supplied.
type SectorEraser interface {
	SectorErase(addr uint32) error
}

// Bridge adapts a backing store that already speaks io.ReaderAt/WriterAt
// (a memory-mapped NOR window, a block device, a simulator) into a
// flash.Device. Unlike flash.Mock, Bridge does not enforce AND-only
// programming or page-boundary splitting itself: it assumes the
// underlying driver already does, the way a real SPI flash controller
// would.
type Bridge struct {
	r    io.ReaderAt
	w    io.WriterAt
	e    SectorEraser
	geom flash.Geometry
}

// NewBridge constructs a Bridge over an existing driver. geom is reported
// verbatim by Geometry() so eeprom.Open can cross-check it.
func NewBridge(r io.ReaderAt, w io.WriterAt, e SectorEraser, geom flash.Geometry) *Bridge {
	return &Bridge{r: r, w: w, e: e, geom: geom}
}

func (b *Bridge) Geometry() flash.Geometry {
	return b.geom
}

func (b *Bridge) Read(addr uint32, buf []byte) error {
	n, err := b.r.ReadAt(buf, int64(addr))
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return fmt.Errorf("driver: read at 0x%X: %w", addr, err)
	}
	return nil
}

func (b *Bridge) Program(addr uint32, data []byte) error {
	if _, err := b.w.WriteAt(data, int64(addr)); err != nil {
		return fmt.Errorf("driver: program at 0x%X: %w", addr, err)
	}
	return nil
}

func (b *Bridge) SectorErase(addr uint32) error {
	if err := b.e.SectorErase(addr); err != nil {
		return fmt.Errorf("driver: sector erase at 0x%X: %w", addr, err)
	}
	return nil
}
