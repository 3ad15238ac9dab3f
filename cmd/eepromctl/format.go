package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format",
		Short: "Force a fresh format and report the resulting geometry",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "formatted, logical size %d bytes\n", eng.Size())
			return nil
		},
	}
}
