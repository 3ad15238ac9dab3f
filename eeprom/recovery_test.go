package eeprom

import (
	"bytes"
	"testing"

	"github.com/BojanFaletic/codex-eeprom-emulation/flash"
)

func TestFormatWhenNeitherSectorValid(t *testing.T) {
	dev := flash.NewMock(8192, 256, 4096)
	e, err := Open(dev, Config{Base: 0, SectorSize: 4096, LogicalSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	if e.activeBase != 0 {
		t.Fatalf("fresh format should select sector A as active, got base %#x", e.activeBase)
	}
	if e.seq != 1 {
		t.Fatalf("fresh format should start at seq 1, got %d", e.seq)
	}
}

func TestCrashAfterHeaderOnlyDiscardsRecord(t *testing.T) {
	dev := flash.NewMock(8192, 256, 4096)
	e, err := Open(dev, Config{Base: 0, SectorSize: 4096, LogicalSize: 64})
	if err != nil {
		t.Fatal(err)
	}

	// Commit a real record first so there's a known-good prefix.
	if err := e.Write(0, []byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}

	// Simulate a crash that programmed a record header but never got to
	// the payload: build a header for a would-be record and program only
	// that, leaving its payload region erased (0xFF).
	nextOff := e.wptr
	hdr := recordHeader{magic: recordMagic, seq: e.seq, addr: 8, len: 4}
	hb := hdr.encode()
	fakePayload := []byte{9, 9, 9, 9}
	hdr.crc32 = recordCRC(hb, fakePayload)
	hb = hdr.encode()
	if err := dev.Program(e.activeBase+nextOff, hb); err != nil {
		t.Fatal(err)
	}
	// payload bytes are deliberately left untouched (still 0xFF)

	e2, err := Open(dev, Config{Base: 0, SectorSize: 4096, LogicalSize: 64})
	if err != nil {
		t.Fatal(err)
	}
	if e2.wptr != nextOff {
		t.Fatalf("wptr = %d, want %d (truncated at the header-only record)", e2.wptr, nextOff)
	}
	buf := make([]byte, 4)
	if err := e2.Read(0, buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3, 4}) {
		t.Fatalf("prior record should survive, got %x", buf)
	}
	buf2 := make([]byte, 4)
	if err := e2.Read(8, buf2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf2, []byte{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("header-only record should not have been applied, got %x", buf2)
	}
}

func TestGeometryMismatchRejected(t *testing.T) {
	dev := flash.NewMock(8192, 256, 4096)
	_, err := Open(dev, Config{Base: 0, SectorSize: 2048, LogicalSize: 64})
	if err == nil {
		t.Fatal("expected error when configured sector size disagrees with device geometry")
	}
}
