package eeprom

import (
	"hash/crc32"
	"testing"
)

func TestCRCConformance(t *testing.T) {
	if got := crc32.ChecksumIEEE(nil); got != 0x00000000 {
		t.Fatalf("crc32(\"\") = %#x, want 0x00000000", got)
	}
	if got := crc32.ChecksumIEEE([]byte("123456789")); got != 0xCBF43926 {
		t.Fatalf("crc32(\"123456789\") = %#x, want 0xCBF43926", got)
	}
}

func TestRecordCRCRoundTrips(t *testing.T) {
	hdr := recordHeader{magic: recordMagic, seq: 1, addr: 4, len: 3}
	hb := hdr.encode()
	payload := []byte{0x01, 0x02, 0x03}
	hdr.crc32 = recordCRC(hb, payload)

	headerZeroed := recordHeader{magic: hdr.magic, seq: hdr.seq, addr: hdr.addr, len: hdr.len}.encode()
	if recordCRC(headerZeroed, payload) != hdr.crc32 {
		t.Fatal("recomputed CRC does not match stored CRC")
	}

	payload[0] ^= 0x01
	if recordCRC(headerZeroed, payload) == hdr.crc32 {
		t.Fatal("CRC failed to detect a single bit flip in payload")
	}
}
