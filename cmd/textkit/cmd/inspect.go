package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/slicex"
	"github.com/msto63/textkit/foundation/utils/textx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Shows graphemes with byte offsets, codepoints and widths",
	Args:  cobra.ExactArgs(1),
	RunE: runText("inspect", func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), renderInspect(processor, args[0]))
		return nil
	}),
}

var inspectHeaders = []string{"#", "GRAPHEME", "OFFSET", "BYTES", "WIDTH", "CODEPOINTS"}

// renderInspect renders one row per grapheme and a summary line
func renderInspect(p *textx.Processor, s string) string {
	graphemes := p.ToGraphemes(s)

	rows := make([][]string, 0, len(graphemes))
	offset := 0
	for i, g := range graphemes {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Quote(g),
			strconv.Itoa(offset),
			strconv.Itoa(len(g)),
			strconv.Itoa(textx.Width(g)),
			slicex.Join(textx.ToCodepoints(g), " "),
		})
		offset += len(g)
	}

	widths := columnWidths(inspectHeaders, rows)

	var b strings.Builder
	b.WriteString(renderRow(inspectHeaders, widths, HeaderStyle))
	b.WriteString(RuleStyle.Render(strings.Repeat("─", slicex.Reduce(widths, 0, func(sum, w int) int { return sum + w }))))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, CellStyle))
	}

	codepoints := slicex.Reduce(graphemes, 0, func(n int, g string) int {
		return n + len(textx.ToCodepoints(g))
	})
	b.WriteString(SummaryStyle.Render(fmt.Sprintf("%d graphemes, %d codepoints, %d bytes, width %d",
		len(graphemes), codepoints, textx.ByteSize(s), textx.Width(s))))
	b.WriteString("\n")
	return b.String()
}

// columnWidths returns the widest cell per column plus a gap of two
func columnWidths(headers []string, rows [][]string) []int {
	widths := slicex.Map(headers, lipgloss.Width)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	return slicex.Map(widths, func(w int) int { return w + 2 })
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		rendered[i] = style.Width(widths[i]).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
