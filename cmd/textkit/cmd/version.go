package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/pkg/core/version"
)

var versionComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "textkit v%s\n", info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)

		if versionComponents {
			fmt.Fprintln(out, "  Packages:")
			for _, name := range version.Components {
				fmt.Fprintf(out, "    %-8s %s\n", name, version.ComponentVersion(name))
			}
		}
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionComponents, "components", false, "List package versions")

	rootCmd.AddCommand(versionCmd)
}
