package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dropEnd          bool
	truncateEllipsis string
)

var sliceCmd = &cobra.Command{
	Use:   "slice <text> <index> <length>",
	Short: "Cuts graphemes out of a text",
	Long: `Prints <length> graphemes starting at <index>. A negative index counts
from the end. Out of range values yield fewer graphemes or an empty line,
never an error.

Use -- before negative numbers: textkit slice -- gleam -2 2`,
	Args: cobra.ExactArgs(3),
	RunE: runText("slice", func(cmd *cobra.Command, args []string) error {
		index, err := intArg("slice", "index", args[1])
		if err != nil {
			return err
		}
		length, err := intArg("slice", "length", args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), processor.Slice(args[0], index, length))
		return nil
	}),
}

var dropCmd = &cobra.Command{
	Use:   "drop <text> <n>",
	Short: "Removes graphemes from the start (or the end with --end)",
	Args:  cobra.ExactArgs(2),
	RunE: runText("drop", func(cmd *cobra.Command, args []string) error {
		n, err := intArg("drop", "n", args[1])
		if err != nil {
			return err
		}
		if dropEnd {
			fmt.Fprintln(cmd.OutOrStdout(), processor.DropEnd(args[0], n))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), processor.DropStart(args[0], n))
		return nil
	}),
}

var truncateCmd = &cobra.Command{
	Use:   "truncate <text> <max>",
	Short: "Shortens a text to at most <max> graphemes",
	Long: `Shortens a text to at most <max> graphemes including the ellipsis.
The ellipsis defaults to text.ellipsis from the configuration.`,
	Args: cobra.ExactArgs(2),
	RunE: runText("truncate", func(cmd *cobra.Command, args []string) error {
		maxLen, err := intArg("truncate", "max", args[1])
		if err != nil {
			return err
		}
		ellipsis := current.Ellipsis
		if cmd.Flags().Changed("ellipsis") {
			ellipsis = truncateEllipsis
		}
		fmt.Fprintln(cmd.OutOrStdout(), processor.Truncate(args[0], maxLen, ellipsis))
		return nil
	}),
}

func init() {
	dropCmd.Flags().BoolVar(&dropEnd, "end", false, "Drop from the end")
	truncateCmd.Flags().StringVar(&truncateEllipsis, "ellipsis", "", "Ellipsis (default: text.ellipsis)")

	rootCmd.AddCommand(sliceCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(truncateCmd)
}
