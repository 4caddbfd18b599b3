package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// add <a> <b>: 8-bit binary addition; overflow wraps.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two binary strings (8-bit, wrapping)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := appCtx.Adder.Add(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}
