package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	padWith   string
	padEnd    bool
	padCenter bool
)

var padCmd = &cobra.Command{
	Use:   "pad <text> <to>",
	Short: "Pads a text to <to> graphemes",
	Long: `Pads a text to <to> graphemes, at the start by default.
The pad text defaults to text.pad from the configuration and is repeated
and cut as needed. Texts that are long enough are printed unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: runText("pad", func(cmd *cobra.Command, args []string) error {
		to, err := intArg("pad", "to", args[1])
		if err != nil {
			return err
		}
		with := current.Pad
		if cmd.Flags().Changed("with") {
			with = padWith
		}

		pad := processor.PadStart
		switch {
		case padEnd:
			pad = processor.PadEnd
		case padCenter:
			pad = processor.Center
		}

		padded, err := pad(args[0], to, with)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), padded)
		return nil
	}),
}

func init() {
	padCmd.Flags().StringVar(&padWith, "with", "", "Pad text (default: text.pad)")
	padCmd.Flags().BoolVar(&padEnd, "end", false, "Pad at the end")
	padCmd.Flags().BoolVar(&padCenter, "center", false, "Pad both sides")
	padCmd.MarkFlagsMutuallyExclusive("end", "center")

	rootCmd.AddCommand(padCmd)
}
