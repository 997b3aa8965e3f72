package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/core/config"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/textx"
	"github.com/msto63/textkit/pkg/core/logging"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	langTag   string
)

// State prepared by setup before every command
var (
	appConfig *config.Config
	current   settings
	logger    *logging.Logger
	processor *textx.Processor
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "textkit - grapheme aware text toolkit",
	Long: `textkit works on text the way readers see it: every position is a
grapheme cluster, so combining marks, flags and emoji sequences stay intact.

Configuration is read from textkit.toml / textkit.yaml in the working
directory or the user config directory, or from --config. Environment
variables with the prefix TEXTKIT_ override file values, e.g.
TEXTKIT_LOG_LEVEL=debug. TEXTKIT_CONFIG_DIR restricts discovery to one
directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: discovered textkit.toml/.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json, console, logfmt")
	rootCmd.PersistentFlags().StringVar(&langTag, "lang", "", "BCP 47 language tag for case mapping (e.g. tr, de)")
}

// setup loads the configuration, applies flag overrides and builds the
// logger and the text processor
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}
	appConfig = cfg

	current = resolveSettings(cfg, cmd)

	base, err := logging.NewLogger(logging.LoggerConfig{
		Name:          "textkit",
		Level:         current.LogLevel,
		Format:        current.LogFormat,
		Output:        cmd.ErrOrStderr(),
		CorrelationID: logging.NewCorrelationID(),
	})
	if err != nil {
		return err
	}
	logger = logging.Wrap(base, "textkit")

	tag, err := language.Parse(current.Language)
	if err != nil {
		return tkerrors.InvalidInput(tkerrors.ModuleCLI, "lang", current.Language, "BCP 47 language tag")
	}
	processor = textx.New(textx.WithLanguage(tag))

	logger.Debug("configuration loaded",
		"file", cfg.FilePath(),
		"command", cmd.Name(),
		"language", tag.String())
	return nil
}

// runText wraps a command body with a timer and severity aware error logging
func runText(operation string, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := logger.StartTimer(operation).WithField("args", len(args))
		if err := fn(cmd, args); err != nil {
			timer.StopWithError(err)
			logger.LogError(err)
			return err
		}
		timer.Stop()
		return nil
	}
}

// intArg parses a decimal integer argument
func intArg(operation, name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, tkerrors.InvalidInput(tkerrors.ModuleCLI, operation, value, name+" must be an integer")
	}
	return n, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
