package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <text>",
	Short: "Reverses the graphemes of a text",
	Args:  cobra.ExactArgs(1),
	RunE: runText("reverse", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), processor.Reverse(args[0]))
		return nil
	}),
}

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compares two texts by their bytes: prints lt, eq or gt",
	Args:  cobra.ExactArgs(2),
	RunE: runText("compare", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), processor.Compare(args[0], args[1]))
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(compareCmd)
}
