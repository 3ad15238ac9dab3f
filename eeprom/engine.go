// Package eeprom emulates a byte-addressable EEPROM on top of a
// page-programmed, sector-erased flash device. It hides the
// erase-before-write asymmetry behind a log-structured, two-sector
// ping-pong scheme with CRC-validated records and in-place compaction.
//
// The engine is strictly single-threaded and synchronous: every operation
// runs to completion on the caller's goroutine, and concurrent use from
// multiple goroutines is undefined. Callers must serialize their own
// access.
package eeprom

import (
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"

	"github.com/BojanFaletic/codex-eeprom-emulation/common"
	"github.com/BojanFaletic/codex-eeprom-emulation/flash"
)

// Engine is a live, opened EEPROM emulation instance. It owns its
// flash.Device exclusively for its lifetime; there is no explicit Close
// because durability is per-write, not per-session.
type Engine struct {
	dev flash.Device
	log *charmlog.Logger

	base       uint32
	sectorSize uint32
	size       uint32

	activeBase  uint32
	scratchBase uint32
	seq         uint32
	wptr        uint32

	state []byte

	stats common.Stats
}

// Option configures an Engine at Open time.
type Option func(*Engine)

// WithLogger attaches a structured logger for recovery warnings and
// compaction events. Without one, or with a nil logger, the engine logs
// nothing.
func WithLogger(l *charmlog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Open constructs the engine over dev and runs init-or-format exactly
// once. Every subsequent Read/Write is a method on the returned, live
// Engine.
func Open(dev flash.Device, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if gr, ok := dev.(flash.GeometryReporter); ok {
		geom := gr.Geometry()
		if geom.SectorSize != 0 && geom.SectorSize != cfg.SectorSize {
			return nil, fmt.Errorf("%w: device sector size %d != configured %d", common.ErrInvalidConfig, geom.SectorSize, cfg.SectorSize)
		}
		if geom.MemSize != 0 && uint64(cfg.Base)+2*uint64(cfg.SectorSize) > uint64(geom.MemSize) {
			return nil, fmt.Errorf("%w: two sectors at base 0x%X don't fit device of size %d", common.ErrInvalidConfig, cfg.Base, geom.MemSize)
		}
	}

	e := &Engine{
		dev:        dev,
		log:        charmlog.New(io.Discard),
		base:       cfg.Base,
		sectorSize: cfg.SectorSize,
		size:       cfg.LogicalSize,
		state:      make([]byte, cfg.LogicalSize),
	}
	for _, opt := range opts {
		opt(e)
	}
	for i := range e.state {
		e.state[i] = 0xFF
	}

	if err := e.initOrFormat(); err != nil {
		return nil, err
	}
	return e, nil
}

// Read copies state[addr:addr+len(out)] into out. Reads never touch flash
// after Open; the shadow is authoritative.
func (e *Engine) Read(addr uint32, out []byte) error {
	if uint64(addr)+uint64(len(out)) > uint64(e.size) {
		return common.ErrOutOfBounds
	}
	end := int(addr) + len(out)
	copy(out, e.state[addr:end])
	e.stats.ReadCount++
	return nil
}

// Write appends a framed record to the active sector's log tail and
// updates the in-memory shadow. Precondition failures (out of bounds,
// empty payload) return without touching flash.
func (e *Engine) Write(addr uint32, data []byte) error {
	if len(data) == 0 {
		return common.ErrEmptyWrite
	}
	if uint64(addr)+uint64(len(data)) > uint64(e.size) {
		return common.ErrOutOfBounds
	}
	end := int(addr) + len(data)

	hdr := recordHeader{magic: recordMagic, seq: e.seq, addr: addr, len: uint32(len(data))}
	hb := hdr.encode()
	hdr.crc32 = recordCRC(hb, data)
	hb = hdr.encode()

	need := align4(recordHeaderSize + len(data))
	if err := e.ensureSpace(need); err != nil {
		return err
	}

	off := e.activeBase + e.wptr
	if err := e.dev.Program(off, hb); err != nil {
		return err
	}
	if err := e.dev.Program(off+recordHeaderSize, data); err != nil {
		return err
	}

	e.wptr += uint32(need)
	copy(e.state[addr:end], data)

	e.stats.WriteCount++
	e.stats.BytesWritten += int64(len(data))
	e.stats.BytesProgrammed += int64(need)

	return nil
}

// Size returns the logical address space size S.
func (e *Engine) Size() uint32 { return e.size }

// Stats returns a snapshot of the engine's lifetime counters.
func (e *Engine) Stats() common.Stats { return e.stats }
