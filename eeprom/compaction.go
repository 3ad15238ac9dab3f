package eeprom

import "github.com/BojanFaletic/codex-eeprom-emulation/common"

// ensureSpace guarantees the active sector has room for a `need`-byte
// (already align4'd) record, compacting if it doesn't. Capacity is
// explicitly re-verified after compaction rather than trusting it
// implicitly: a compaction that still can't fit the record means the
// engine is misconfigured (the snapshot record itself doesn't fit), and
// that's reported as ErrCapacity rather than silently succeeding.
func (e *Engine) ensureSpace(need int) error {
	if int(e.sectorSize)-int(e.wptr) >= need {
		return nil
	}
	if err := e.compact(); err != nil {
		return err
	}
	if int(e.sectorSize)-int(e.wptr) < need {
		return common.ErrCapacity
	}
	return nil
}

// compact writes a fresh sector header plus a single full-image snapshot
// record into scratch, then promotes scratch to active by virtue of its
// higher seq. The old active sector is left intact; it's erased lazily at
// the start of the next compaction.
//
// The new sector header is written before the snapshot payload, matching
// the on-flash sequencing of the original EEPROM emulation this engine is
// modeled on. That ordering carries a hazard: if power is lost after the
// new header lands but before the snapshot payload completes, reopen will
// pick the new sector on seq alone and replay will discard the torn
// snapshot record, yielding an all-0xFF shadow. Writing the payload first
// and the header last would close that window, at the cost of a more
// complex "two scratch candidates" recovery case; this implementation
// keeps the simpler ordering and accepts the documented hazard.
func (e *Engine) compact() error {
	if sectorHeaderSize+align4(recordHeaderSize+len(e.state)) > int(e.sectorSize) {
		return common.ErrCapacity
	}
	if err := e.dev.SectorErase(e.scratchBase); err != nil {
		return err
	}

	newSeq := e.seq + 1
	sh := sectorHeader{magic: sectorMagic, seq: newSeq}
	if err := e.dev.Program(e.scratchBase, sh.encode()); err != nil {
		return err
	}

	rec := recordHeader{magic: recordMagic, seq: newSeq, addr: 0, len: e.size}
	rb := rec.encode()
	snapshot := make([]byte, len(e.state))
	copy(snapshot, e.state)
	rec.crc32 = recordCRC(rb, snapshot)
	rb = rec.encode()

	recOff := e.scratchBase + sectorHeaderSize
	if err := e.dev.Program(recOff, rb); err != nil {
		return err
	}
	if err := e.dev.Program(recOff+recordHeaderSize, snapshot); err != nil {
		return err
	}

	e.activeBase, e.scratchBase = e.scratchBase, e.activeBase
	e.seq = newSeq
	e.wptr = uint32(sectorHeaderSize + align4(recordHeaderSize+len(snapshot)))

	e.stats.CompactCount++
	e.stats.BytesProgrammed += int64(sectorHeaderSize + align4(recordHeaderSize+len(snapshot)))
	e.log.Info("compaction complete", "new_seq", newSeq, "active_base", e.activeBase)

	return nil
}
