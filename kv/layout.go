// Package kv implements the demo CLI's fixed-offset key/value layout over
// an *eeprom.Engine: a boot counter and a small set of named settings at
// hard-coded addresses. It's a convenience layer for the CLI, not part of
// the engine itself.
package kv

const (
	// BootCounterAddr holds a little-endian u32 boot counter.
	BootCounterAddr = 0x0000

	// NameAddr holds a NUL-padded, at-most NameLen-byte string.
	NameAddr = 0x0010
	NameLen  = 32

	// BaudAddr holds a little-endian u32 baud rate.
	BaudAddr = 0x0030

	// ModeAddr holds a single mode byte.
	ModeAddr = 0x0034
)
