package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/textx"
)

var lengthWidth bool

var lengthCmd = &cobra.Command{
	Use:   "length <text>",
	Short: "Counts the graphemes of a text",
	Long: `Counts the grapheme clusters of a text. "é" counts as one,
a flag as one, a family emoji as one.

With --width the monospace display width is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runText("length", func(cmd *cobra.Command, args []string) error {
		if lengthWidth {
			fmt.Fprintln(cmd.OutOrStdout(), textx.Width(args[0]))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), processor.Length(args[0]))
		return nil
	}),
}

var graphemesCmd = &cobra.Command{
	Use:   "graphemes <text>",
	Short: "Lists the graphemes of a text, one quoted per line",
	Args:  cobra.ExactArgs(1),
	RunE: runText("graphemes", func(cmd *cobra.Command, args []string) error {
		for _, g := range processor.ToGraphemes(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(g))
		}
		return nil
	}),
}

var firstCmd = &cobra.Command{
	Use:   "first <text>",
	Short: "Prints the first grapheme",
	Args:  cobra.ExactArgs(1),
	RunE: runText("first", func(cmd *cobra.Command, args []string) error {
		g, err := processor.First(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), g)
		return nil
	}),
}

var lastCmd = &cobra.Command{
	Use:   "last <text>",
	Short: "Prints the last grapheme",
	Args:  cobra.ExactArgs(1),
	RunE: runText("last", func(cmd *cobra.Command, args []string) error {
		g, err := processor.Last(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), g)
		return nil
	}),
}

func init() {
	lengthCmd.Flags().BoolVar(&lengthWidth, "width", false, "Print the display width instead")

	rootCmd.AddCommand(lengthCmd)
	rootCmd.AddCommand(graphemesCmd)
	rootCmd.AddCommand(firstCmd)
	rootCmd.AddCommand(lastCmd)
}
