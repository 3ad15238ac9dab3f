package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BojanFaletic/codex-eeprom-emulation/kv"
)

func newInfoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print flash geometry and the fixed KV layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "base:        0x%08X\n", flags.base)
			fmt.Fprintf(cmd.OutOrStdout(), "sector size: %d bytes\n", flags.sectorSize)
			fmt.Fprintf(cmd.OutOrStdout(), "logical size: %d bytes\n", eng.Size())
			fmt.Fprintln(cmd.OutOrStdout(), "kv layout:")
			fmt.Fprintf(cmd.OutOrStdout(), "  boot counter @ 0x%04X (4 bytes)\n", kv.BootCounterAddr)
			fmt.Fprintf(cmd.OutOrStdout(), "  name         @ 0x%04X (%d bytes)\n", kv.NameAddr, kv.NameLen)
			fmt.Fprintf(cmd.OutOrStdout(), "  baud         @ 0x%04X (4 bytes)\n", kv.BaudAddr)
			fmt.Fprintf(cmd.OutOrStdout(), "  mode         @ 0x%04X (1 byte)\n", kv.ModeAddr)
			stats := eng.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "stats: writes=%d reads=%d compactions=%d\n",
				stats.WriteCount, stats.ReadCount, stats.CompactCount)
			return nil
		},
	}
}
