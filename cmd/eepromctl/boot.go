package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BojanFaletic/codex-eeprom-emulation/kv"
)

func newBootCmd(flags *rootFlags) *cobra.Command {
	var inc bool

	cmd := &cobra.Command{
		Use:   "boot",
		Short: "Read (optionally increment) the boot counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			if inc {
				count, err := kv.IncBootCount(eng)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "boot count: %d\n", count)
				return nil
			}
			count, err := kv.GetBootCount(eng)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "boot count: %d\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&inc, "inc", false, "increment the counter before reporting it")
	return cmd
}
