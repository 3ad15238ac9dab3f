package eeprom

// initOrFormat reads both candidate sector headers, picks the active
// sector by highest valid seq (ties favor A), formats from scratch if
// neither is valid, then replays the active sector's log to rebuild the
// shadow and the write pointer.
func (e *Engine) initOrFormat() error {
	hb := make([]byte, sectorHeaderSize)

	if err := e.dev.Read(e.base, hb); err != nil {
		return err
	}
	shA, okA := parseSectorHeader(hb)

	if err := e.dev.Read(e.base+e.sectorSize, hb); err != nil {
		return err
	}
	shB, okB := parseSectorHeader(hb)

	switch {
	case okA && okB:
		if shA.seq >= shB.seq {
			e.activeBase, e.scratchBase, e.seq = e.base, e.base+e.sectorSize, shA.seq
		} else {
			e.activeBase, e.scratchBase, e.seq = e.base+e.sectorSize, e.base, shB.seq
		}
	case okA:
		e.activeBase, e.scratchBase, e.seq = e.base, e.base+e.sectorSize, shA.seq
	case okB:
		e.activeBase, e.scratchBase, e.seq = e.base+e.sectorSize, e.base, shB.seq
	default:
		if err := e.format(); err != nil {
			return err
		}
	}

	return e.replayLog()
}

// format erases both sectors and writes a fresh sector header with seq=1
// to A, making A active. Scratch (B) is left erased but otherwise
// untouched here; it is re-erased immediately before any future
// compaction writes to it.
func (e *Engine) format() error {
	if err := e.dev.SectorErase(e.base); err != nil {
		return err
	}
	if err := e.dev.SectorErase(e.base + e.sectorSize); err != nil {
		return err
	}
	hdr := sectorHeader{magic: sectorMagic, seq: 1}
	if err := e.dev.Program(e.base, hdr.encode()); err != nil {
		return err
	}
	e.activeBase = e.base
	e.scratchBase = e.base + e.sectorSize
	e.seq = 1
	return nil
}

// replayLog walks the active sector's record stream from just past its
// header, applying each valid record to state and stopping at the first
// structurally invalid, zero-length, out-of-range or CRC-mismatched
// record. That stopping point becomes wptr, guaranteeing at most one torn
// tail record is ever discarded on reopen.
func (e *Engine) replayLog() error {
	for i := range e.state {
		e.state[i] = 0xFF
	}

	off := uint32(sectorHeaderSize)
	hb := make([]byte, recordHeaderSize)

	for off < e.sectorSize {
		if err := e.dev.Read(e.activeBase+off, hb); err != nil {
			return err
		}
		hdr := decodeRecordHeader(hb)

		if isBlankRecordMagic(hdr.magic) || hdr.magic != recordMagic {
			break
		}
		if hdr.len == 0 {
			break
		}
		if uint64(hdr.addr)+uint64(hdr.len) > uint64(e.size) {
			e.log.Warn("record addr+len exceeds logical size, discarding tail", "off", off, "addr", hdr.addr, "len", hdr.len)
			break
		}

		payload := make([]byte, hdr.len)
		if err := e.dev.Read(e.activeBase+off+recordHeaderSize, payload); err != nil {
			return err
		}

		headerZeroed := recordHeader{magic: hdr.magic, seq: hdr.seq, addr: hdr.addr, len: hdr.len}.encode()
		if recordCRC(headerZeroed, payload) != hdr.crc32 {
			e.log.Warn("CRC mismatch, discarding torn tail record", "off", off, "sector", e.activeBase)
			break
		}

		copy(e.state[hdr.addr:hdr.addr+hdr.len], payload)
		off += uint32(align4(recordHeaderSize + int(hdr.len)))
	}

	e.wptr = off
	return nil
}
