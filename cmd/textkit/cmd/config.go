package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/textkit/foundation/core/config"
)

var configYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Shows the effective configuration",
	Long: `Shows the configuration after defaults, file, environment and flags
were applied. Output is TOML, or YAML with --yaml.`,
	Args: cobra.NoArgs,
	RunE: runText("config", func(cmd *cobra.Command, args []string) error {
		logger.Debug("effective configuration", "source", appConfig.String())

		if configYAML {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(current)
		}
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(current)
	}),
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Lists the files searched during discovery",
	Args:  cobra.NoArgs,
	RunE: runText("config.paths", func(cmd *cobra.Command, args []string) error {
		for _, path := range config.ListPossibleConfigFiles(discoveryOptions()) {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	}),
}

func init() {
	configCmd.Flags().BoolVar(&configYAML, "yaml", false, "Print YAML instead of TOML")
	configCmd.AddCommand(configPathsCmd)

	rootCmd.AddCommand(configCmd)
}
