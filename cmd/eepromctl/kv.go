package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BojanFaletic/codex-eeprom-emulation/kv"
)

func newKVCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Get or set a fixed-layout key (name, baud, mode)",
	}
	cmd.AddCommand(newKVGetCmd(flags), newKVSetCmd(flags))
	return cmd
}

func newKVGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "get <name|baud|mode>",
		Short:     "Print the current value of a key",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"name", "baud", "mode"},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			switch args[0] {
			case "name":
				v, err := kv.GetName(eng)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			case "baud":
				v, err := kv.GetBaud(eng)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			case "mode":
				v, err := kv.GetMode(eng)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v)
			default:
				return fmt.Errorf("unknown key %q", args[0])
			}
			return nil
		},
	}
}

func newKVSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name|baud|mode> <value>",
		Short: "Set the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			switch args[0] {
			case "name":
				return kv.SetName(eng, args[1])
			case "baud":
				v, err := strconv.ParseUint(args[1], 0, 32)
				if err != nil {
					return err
				}
				return kv.SetBaud(eng, uint32(v))
			case "mode":
				v, err := strconv.ParseUint(args[1], 0, 8)
				if err != nil {
					return err
				}
				return kv.SetMode(eng, byte(v))
			default:
				return fmt.Errorf("unknown key %q", args[0])
			}
		},
	}
}
