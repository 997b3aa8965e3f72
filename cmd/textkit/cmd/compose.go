package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/textx"
)

// maxRepeat bounds the output of the repeat command
const maxRepeat = 10000

var splitOnce bool

var splitCmd = &cobra.Command{
	Use:   "split <text> <separator>",
	Short: "Splits a text on a separator, one quoted part per line",
	Long: `Splits a text on every occurrence of <separator>, keeping empty parts.
An empty separator splits into graphemes.

With --once only the first occurrence splits and a missing separator
is an error.`,
	Args: cobra.ExactArgs(2),
	RunE: runText("split", func(cmd *cobra.Command, args []string) error {
		var parts []string
		if splitOnce {
			before, after, err := textx.SplitOnce(args[0], args[1])
			if err != nil {
				return err
			}
			parts = []string{before, after}
		} else {
			parts = processor.Split(args[0], args[1])
		}
		for _, part := range parts {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Quote(part))
		}
		return nil
	}),
}

var cropCmd = &cobra.Command{
	Use:   "crop <text> <before>",
	Short: "Prints the text from the first occurrence of <before>",
	Args:  cobra.ExactArgs(2),
	RunE: runText("crop", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), textx.Crop(args[0], args[1]))
		return nil
	}),
}

var joinCmd = &cobra.Command{
	Use:   "join <separator> <parts...>",
	Short: "Joins parts with a separator",
	Args:  cobra.MinimumNArgs(1),
	RunE: runText("join", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), textx.Join(args[1:], args[0]))
		return nil
	}),
}

var repeatCmd = &cobra.Command{
	Use:   "repeat <text> <times>",
	Short: "Repeats a text",
	Args:  cobra.ExactArgs(2),
	RunE: runText("repeat", func(cmd *cobra.Command, args []string) error {
		times, err := intArg("repeat", "times", args[1])
		if err != nil {
			return err
		}
		if times > maxRepeat {
			return tkerrors.OutOfRange(tkerrors.ModuleCLI, "repeat", times, 0, maxRepeat)
		}
		fmt.Fprintln(cmd.OutOrStdout(), textx.Repeat(args[0], times))
		return nil
	}),
}

var replaceCmd = &cobra.Command{
	Use:   "replace <text> <each> <with>",
	Short: "Replaces every occurrence of <each> with <with>",
	Args:  cobra.ExactArgs(3),
	RunE: runText("replace", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), textx.Replace(args[0], args[1], args[2]))
		return nil
	}),
}

func init() {
	splitCmd.Flags().BoolVar(&splitOnce, "once", false, "Split on the first occurrence only")

	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(cropCmd)
	rootCmd.AddCommand(joinCmd)
	rootCmd.AddCommand(repeatCmd)
	rootCmd.AddCommand(replaceCmd)
}
