package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BojanFaletic/codex-eeprom-emulation/hexutil"
)

func newDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump [offset] [len]",
		Short: "Hex dump a region of the logical address space",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var offset uint32
			length := flags.size

			if len(args) > 0 {
				v, err := strconv.ParseUint(args[0], 0, 32)
				if err != nil {
					return err
				}
				offset = uint32(v)
			}
			if len(args) > 1 {
				v, err := strconv.ParseUint(args[1], 0, 32)
				if err != nil {
					return err
				}
				length = uint32(v)
			}

			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			buf := make([]byte, length)
			if err := eng.Read(offset, buf); err != nil {
				return err
			}
			return hexutil.Dump(cmd.OutOrStdout(), offset, buf)
		},
	}
}
