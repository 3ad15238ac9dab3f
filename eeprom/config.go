package eeprom

import (
	"fmt"

	"github.com/BojanFaletic/codex-eeprom-emulation/common"
)

// Config describes where the two-sector ping-pong log lives in flash and
// how large the logical address space it exposes is.
type Config struct {
	// Base is the byte offset of sector A; sector B starts at Base+SectorSize.
	Base uint32

	// SectorSize is the erase granularity (bytes per sector). Both sectors
	// are this size.
	SectorSize uint32

	// LogicalSize is the byte-addressable size S exposed to callers.
	LogicalSize uint32
}

// Validate rejects zero sizes and a logical size that can't possibly fit
// in two sectors, before any flash access happens.
func (c Config) Validate() error {
	if c.LogicalSize == 0 {
		return fmt.Errorf("%w: logical size must be nonzero", common.ErrInvalidConfig)
	}
	if c.SectorSize == 0 {
		return fmt.Errorf("%w: sector size must be nonzero", common.ErrInvalidConfig)
	}
	if uint64(c.LogicalSize) > 2*uint64(c.SectorSize) {
		return fmt.Errorf("%w: logical size %d exceeds 2*sector_size %d", common.ErrInvalidConfig, c.LogicalSize, 2*c.SectorSize)
	}
	return nil
}
