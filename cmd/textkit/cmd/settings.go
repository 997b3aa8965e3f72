package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/core/config"
)

const envPrefix = "TEXTKIT"

// settings is the effective configuration after flags are applied
type settings struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
	Language  string `toml:"language" yaml:"language"`
	Pad       string `toml:"pad" yaml:"pad"`
	Ellipsis  string `toml:"ellipsis" yaml:"ellipsis"`
	File      string `toml:"file,omitempty" yaml:"file,omitempty"`
}

var configDefaults = map[string]interface{}{
	"log.level":     "warn",
	"log.format":    "text",
	"text.language": "und",
	"text.pad":      " ",
	"text.ellipsis": "…",
}

var configRules = config.ValidationRules{
	"log.level":     {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
	"log.format":    {Type: "string", OneOf: []string{"text", "json", "console", "logfmt"}},
	"text.language": {Type: "string", Check: checkLanguage},
	"text.pad":      {Type: "string", MinLen: 1},
	"text.ellipsis": {Type: "string"},
}

func checkLanguage(value string) error {
	_, err := language.Parse(value)
	return err
}

// loadConfig reads --config when given, otherwise discovers a config file
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	return config.Discover(discoveryOptions())
}

func discoveryOptions() config.DiscoveryOptions {
	options := config.DefaultDiscoveryOptions("textkit")
	options.EnvPrefix = envPrefix
	options.Defaults = configDefaults
	if dir := os.Getenv("TEXTKIT_CONFIG_DIR"); dir != "" {
		options.Paths = []string{dir}
	}
	return options
}

// resolveSettings merges configuration values with changed flags
func resolveSettings(cfg *config.Config, cmd *cobra.Command) settings {
	s := settings{
		LogLevel:  cfg.GetString("log.level"),
		LogFormat: cfg.GetString("log.format"),
		Language:  cfg.GetString("text.language"),
		Pad:       cfg.GetString("text.pad"),
		Ellipsis:  cfg.GetString("text.ellipsis"),
		File:      cfg.FilePath(),
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		s.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		s.LogFormat = logFormat
	}
	if flags.Changed("lang") {
		s.Language = langTag
	}
	return s
}
