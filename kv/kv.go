package kv

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Store is anything that can Read/Write the eeprom.Engine's logical
// address space. It's satisfied by *eeprom.Engine; spelled out as an
// interface here so kv doesn't force its caller into a specific
// concrete engine for testing.
type Store interface {
	Read(addr uint32, out []byte) error
	Write(addr uint32, data []byte) error
}

// GetBootCount reads the boot counter.
func GetBootCount(s Store) (uint32, error) {
	var b [4]byte
	if err := s.Read(BootCounterAddr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// IncBootCount reads the boot counter, increments it with wraparound, and
// writes the new value back, returning it.
func IncBootCount(s Store) (uint32, error) {
	count, err := GetBootCount(s)
	if err != nil {
		return 0, err
	}
	count++
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], count)
	if err := s.Write(BootCounterAddr, b[:]); err != nil {
		return 0, err
	}
	return count, nil
}

// GetName reads the NUL-terminated name field.
func GetName(s Store) (string, error) {
	buf := make([]byte, NameLen)
	if err := s.Read(NameAddr, buf); err != nil {
		return "", err
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf), nil
}

// SetName writes name, NUL-padded to NameLen bytes. It's rejected if name
// doesn't fit.
func SetName(s Store, name string) error {
	if len(name) > NameLen {
		return fmt.Errorf("kv: name %q too long (max %d bytes)", name, NameLen)
	}
	buf := make([]byte, NameLen)
	copy(buf, name)
	return s.Write(NameAddr, buf)
}

// GetBaud reads the baud rate field.
func GetBaud(s Store) (uint32, error) {
	var b [4]byte
	if err := s.Read(BaudAddr, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// SetBaud writes the baud rate field.
func SetBaud(s Store, baud uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], baud)
	return s.Write(BaudAddr, b[:])
}

// GetMode reads the mode byte.
func GetMode(s Store) (byte, error) {
	var b [1]byte
	if err := s.Read(ModeAddr, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// SetMode writes the mode byte.
func SetMode(s Store, mode byte) error {
	return s.Write(ModeAddr, []byte{mode})
}
