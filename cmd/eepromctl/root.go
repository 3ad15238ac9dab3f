// Package main implements eepromctl, a demo CLI and interactive shell over
// the eeprom engine backed by an in-memory flash.Mock. It's a convenience
// wrapper for exercising the engine by hand, not part of the engine's own
// contract.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/BojanFaletic/codex-eeprom-emulation/eeprom"
	"github.com/BojanFaletic/codex-eeprom-emulation/flash"
)

const (
	defaultBase       = uint32(0)
	defaultSectorSize = uint32(4096)
	defaultSize       = uint32(1024)
)

// rootFlags holds the persistent geometry flags shared by every
// subcommand.
type rootFlags struct {
	base       uint32
	sectorSize uint32
	size       uint32
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "eepromctl",
		Short:         "Mock EEPROM demo CLI",
		Long:          "Demo CLI driving the eeprom engine over an in-memory mock flash device.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Uint32Var(&flags.base, "base", defaultBase, "base address inside flash")
	cmd.PersistentFlags().Uint32Var(&flags.sectorSize, "sector-size", defaultSectorSize, "sector size (bytes)")
	cmd.PersistentFlags().Uint32Var(&flags.size, "size", defaultSize, "logical EEPROM size (bytes)")

	cmd.AddCommand(
		newInfoCmd(flags),
		newFormatCmd(flags),
		newReadCmd(flags),
		newWriteCmd(flags),
		newDumpCmd(flags),
		newBootCmd(flags),
		newKVCmd(flags),
		newReplCmd(flags),
	)

	return cmd
}

// openEngine builds a fresh mock flash and opens the engine over it,
// logging recovery warnings through a small stderr logger. The logger's
// level is Warn, so the engine's Info-level compaction lines are not shown.
func openEngine(f *rootFlags) (*eeprom.Engine, error) {
	dev := flash.NewMock(2*f.sectorSize, 256, f.sectorSize)
	logger := charmlog.New(os.Stderr)
	logger.SetLevel(charmlog.WarnLevel)
	return eeprom.Open(dev, eeprom.Config{
		Base:        f.base,
		SectorSize:  f.sectorSize,
		LogicalSize: f.size,
	}, eeprom.WithLogger(logger))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
