package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/slicex"
	"github.com/msto63/textkit/foundation/utils/textx"
)

var (
	codepointsDecode bool
	codepointsInt    bool
)

var codepointsCmd = &cobra.Command{
	Use:   "codepoints <text> | codepoints --decode <value...>",
	Short: "Converts between text and codepoints",
	Long: `Prints the codepoints of a text in U+XXXX notation, or as integers
with --int.

With --decode the arguments are codepoints (65, 0x41 or U+0041) and the
encoded text is printed. Surrogates, U+FFFE and U+FFFF are rejected.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if codepointsDecode {
			return cobra.MinimumNArgs(1)(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: runText("codepoints", func(cmd *cobra.Command, args []string) error {
		if codepointsDecode {
			cps := make([]textx.Codepoint, 0, len(args))
			for _, arg := range args {
				cp, err := parseCodepoint(arg)
				if err != nil {
					return err
				}
				cps = append(cps, cp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), textx.FromCodepoints(cps))
			return nil
		}

		if codepointsInt {
			fmt.Fprintln(cmd.OutOrStdout(), slicex.Join(textx.CodepointInts(args[0]), " "))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), slicex.Join(textx.ToCodepoints(args[0]), " "))
		return nil
	}),
}

// parseCodepoint accepts decimal, 0x hexadecimal and U+ notation
func parseCodepoint(arg string) (textx.Codepoint, error) {
	s := strings.TrimSpace(arg)
	base := 0
	if rest, ok := strings.CutPrefix(strings.ToUpper(s), "U+"); ok {
		s, base = rest, 16
	}

	v, err := strconv.ParseInt(s, base, 32)
	if err != nil {
		return textx.Codepoint{}, tkerrors.InvalidInput(tkerrors.ModuleCLI, "codepoints", arg, "integer, 0x hex or U+ notation")
	}
	return textx.CodepointOf(int(v))
}

func init() {
	codepointsCmd.Flags().BoolVar(&codepointsDecode, "decode", false, "Build text from codepoint arguments")
	codepointsCmd.Flags().BoolVar(&codepointsInt, "int", false, "Print decimal integers")

	rootCmd.AddCommand(codepointsCmd)
}
