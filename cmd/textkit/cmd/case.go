package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/textx"
)

var normalizeForm string

var upperCmd = &cobra.Command{
	Use:   "upper <text>",
	Short: "Converts a text to upper case (language from --lang)",
	Args:  cobra.ExactArgs(1),
	RunE: runText("upper", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), processor.Uppercase(args[0]))
		return nil
	}),
}

var lowerCmd = &cobra.Command{
	Use:   "lower <text>",
	Short: "Converts a text to lower case (language from --lang)",
	Args:  cobra.ExactArgs(1),
	RunE: runText("lower", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), processor.Lowercase(args[0]))
		return nil
	}),
}

var capitaliseCmd = &cobra.Command{
	Use:     "capitalise <text>",
	Aliases: []string{"capitalize"},
	Short:   "Upper-cases the first grapheme and lower-cases the rest",
	Args:    cobra.ExactArgs(1),
	RunE: runText("capitalise", func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), processor.Capitalise(args[0]))
		return nil
	}),
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>",
	Short: "Converts a text to a Unicode normalization form",
	Args:  cobra.ExactArgs(1),
	RunE: runText("normalize", func(cmd *cobra.Command, args []string) error {
		form, err := textx.ParseForm(normalizeForm)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), textx.Normalize(args[0], form))
		return nil
	}),
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeForm, "form", "NFC", "Normalization form: NFC, NFD, NFKC, NFKD")

	rootCmd.AddCommand(upperCmd)
	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(capitaliseCmd)
	rootCmd.AddCommand(normalizeCmd)
}
