package eeprom

import "encoding/binary"

const (
	sectorMagic = 0xEE5EC007
	recordMagic = 0xEE4C0A11

	sectorHeaderSize = 16
	recordHeaderSize = 20
)

// sectorHeader is the 16-byte little-endian header at the start of each
// sector: magic, generation seq, two reserved zero words.
type sectorHeader struct {
	magic uint32
	seq   uint32
}

func (h sectorHeader) encode() []byte {
	buf := make([]byte, sectorHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.seq)
	// bytes [8:16) are reserved and stay zero
	return buf
}

// parseSectorHeader returns the header and true if buf encodes a valid
// sector header: magic matches and seq isn't the all-erased sentinel.
func parseSectorHeader(buf []byte) (sectorHeader, bool) {
	if len(buf) < sectorHeaderSize {
		return sectorHeader{}, false
	}
	magic := binary.LittleEndian.Uint32(buf[0:4])
	seq := binary.LittleEndian.Uint32(buf[4:8])
	if magic != sectorMagic || seq == 0xFFFFFFFF {
		return sectorHeader{}, false
	}
	return sectorHeader{magic: magic, seq: seq}, true
}

// recordHeader is the 20-byte little-endian header preceding every record
// payload: magic, generation seq, logical addr, payload len, crc32.
type recordHeader struct {
	magic uint32
	seq   uint32
	addr  uint32
	len   uint32
	crc32 uint32
}

func (h recordHeader) encode() []byte {
	buf := make([]byte, recordHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], h.magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.seq)
	binary.LittleEndian.PutUint32(buf[8:12], h.addr)
	binary.LittleEndian.PutUint32(buf[12:16], h.len)
	binary.LittleEndian.PutUint32(buf[16:20], h.crc32)
	return buf
}

// decodeRecordHeader parses buf without validating it structurally; the
// caller checks the blank-magic sentinel and runs the CRC separately.
func decodeRecordHeader(buf []byte) recordHeader {
	return recordHeader{
		magic: binary.LittleEndian.Uint32(buf[0:4]),
		seq:   binary.LittleEndian.Uint32(buf[4:8]),
		addr:  binary.LittleEndian.Uint32(buf[8:12]),
		len:   binary.LittleEndian.Uint32(buf[12:16]),
		crc32: binary.LittleEndian.Uint32(buf[16:20]),
	}
}

// isBlankRecordMagic reports whether magic is the "no record here"
// sentinel: an erased word (0xFFFFFFFF) or a zeroed one (torn programs
// sometimes land on a run of zero bytes).
func isBlankRecordMagic(magic uint32) bool {
	return magic == 0xFFFFFFFF || magic == 0x00000000
}

// align4 rounds x up to the next multiple of 4.
func align4(x int) int {
	return (x + 3) &^ 3
}
