package common

import "errors"

var (
	// ErrOutOfBounds is returned when addr+len falls outside the logical size.
	ErrOutOfBounds = errors.New("eeprom: address range out of bounds")

	// ErrCapacity is returned when compaction could not free enough space
	// for the record being appended.
	ErrCapacity = errors.New("eeprom: capacity exhausted")

	// ErrInvalidConfig is returned by Open for a malformed geometry.
	ErrInvalidConfig = errors.New("eeprom: invalid configuration")

	// ErrEmptyWrite is returned for a zero-length write; len==0 is reserved
	// as the replay sentinel for "no record here".
	ErrEmptyWrite = errors.New("eeprom: empty write rejected")
)
