package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newReadCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "read <addr> <len>",
		Short: "Read len bytes starting at addr and print them as hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}

			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			buf := make([]byte, n)
			if err := eng.Read(addr, buf); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
			return nil
		},
	}
}

func newWriteCmd(flags *rootFlags) *cobra.Command {
	var hexBytes string
	var str string

	cmd := &cobra.Command{
		Use:   "write <addr>",
		Short: "Write bytes at addr, supplied via --hex or --str",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(args[0])
			if err != nil {
				return err
			}

			var data []byte
			switch {
			case hexBytes != "" && str != "":
				return fmt.Errorf("only one of --hex or --str may be given")
			case hexBytes != "":
				data, err = hex.DecodeString(hexBytes)
				if err != nil {
					return fmt.Errorf("invalid --hex: %w", err)
				}
			case str != "":
				data = []byte(str)
			default:
				return fmt.Errorf("one of --hex or --str is required")
			}

			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			if err := eng.Write(addr, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes at 0x%X\n", len(data), addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&hexBytes, "hex", "", "payload as a hex string")
	cmd.Flags().StringVar(&str, "str", "", "payload as a literal string")
	return cmd
}

func parseAddr(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint32(v), nil
}
