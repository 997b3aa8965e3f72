package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/textx"
	"github.com/msto63/textkit/pkg/core/version"
)

// execute runs the root command with args in an isolated config directory
// and returns stdout, stderr and the error
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	dir := t.TempDir()
	if os.Getenv("TEXTKIT_CONFIG_DIR") == "" {
		t.Setenv("TEXTKIT_CONFIG_DIR", dir)
	}
	t.Setenv("XDG_CONFIG_HOME", dir)

	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default, since cobra keeps flag
// state between executions
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func errorCode(err error) string {
	var tkErr *tkerror.Error
	if errors.As(err, &tkErr) {
		return string(tkErr.Code())
	}
	return ""
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"length", []string{"length", "e\u0301te\u0301"}, "4\n"},
		{"length flag", []string{"length", "\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7"}, "2\n"},
		{"length width", []string{"length", "--width", "\u4E2D\u6587"}, "4\n"},
		{"graphemes", []string{"graphemes", "ae\u0301"}, "\"a\"\n\"e\u0301\"\n"},
		{"first", []string{"first", "e\u0301a"}, "e\u0301\n"},
		{"last", []string{"last", "gleam"}, "m\n"},
		{"slice", []string{"slice", "gleam", "1", "2"}, "le\n"},
		{"slice negative", []string{"slice", "--", "gleam", "-2", "2"}, "am\n"},
		{"slice clipped", []string{"slice", "gleam", "10", "3"}, "\n"},
		{"drop start", []string{"drop", "The Lone Gunmen", "2"}, "e Lone Gunmen\n"},
		{"drop end", []string{"drop", "--end", "Cigarette Smoking Man", "2"}, "Cigarette Smoking M\n"},
		{"truncate", []string{"truncate", "--ellipsis", "...", "Hello, World", "8"}, "Hello...\n"},
		{"split", []string{"split", "home/a/b/", "/"}, "\"home\"\n\"a\"\n\"b\"\n\"\"\n"},
		{"split once", []string{"split", "--once", "home/a/b/", "/"}, "\"home\"\n\"a/b/\"\n"},
		{"crop", []string{"crop", "The Lone Gunmen", "Lone"}, "Lone Gunmen\n"},
		{"join", []string{"join", ", ", "a", "b", "c"}, "a, b, c\n"},
		{"join nothing", []string{"join", ","}, "\n"},
		{"repeat", []string{"repeat", "ab", "3"}, "ababab\n"},
		{"repeat zero", []string{"repeat", "ab", "0"}, "\n"},
		{"replace", []string{"replace", "www.example.com", ".", "-"}, "www-example-com\n"},
		{"pad start", []string{"pad", "--with", ".", "121", "5"}, "..121\n"},
		{"pad end", []string{"pad", "--end", "--with", "ab", "1", "4"}, "1aba\n"},
		{"pad center", []string{"pad", "--center", "--with", "*", "go", "7"}, "**go***\n"},
		{"pad long enough", []string{"pad", "--with", ".", "121", "2"}, "121\n"},
		{"pad default", []string{"pad", "7", "3"}, "  7\n"},
		{"upper", []string{"upper", "stra\u00DFe"}, "STRASSE\n"},
		{"lower", []string{"lower", "X-FILES"}, "x-files\n"},
		{"capitalise", []string{"capitalise", "mAMOUNA"}, "Mamouna\n"},
		{"capitalize alias", []string{"capitalize", "gleam"}, "Gleam\n"},
		{"normalize nfc", []string{"normalize", "e\u0301"}, "\u00E9\n"},
		{"normalize nfd", []string{"normalize", "--form", "nfd", "\u00E9"}, "e\u0301\n"},
		{"reverse", []string{"reverse", "e\u0301a"}, "ae\u0301\n"},
		{"compare lt", []string{"compare", "a", "b"}, "lt\n"},
		{"compare eq", []string{"compare", "b", "b"}, "eq\n"},
		{"compare gt", []string{"compare", "\u00E9", "e\u0301"}, "gt\n"},
		{"codepoints", []string{"codepoints", "e\u0301"}, "U+0065 U+0301\n"},
		{"codepoints int", []string{"codepoints", "--int", "ab"}, "97 98\n"},
		{"codepoints decode", []string{"codepoints", "--decode", "72", "0x69", "U+1F600"}, "Hi\U0001F600\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v (stderr: %s)", err, stderr)
			}
			if stdout != tt.want {
				t.Errorf("output = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		sentinel error
		code     string
	}{
		{"first of empty", []string{"first", ""}, textx.ErrEmptyInput, ""},
		{"last of empty", []string{"last", ""}, textx.ErrEmptyInput, ""},
		{"split once without separator", []string{"split", "--once", "home", "?"}, textx.ErrNotFound, ""},
		{"pad with empty", []string{"pad", "--with", "", "121", "5"}, textx.ErrInvalidPadding, ""},
		{"surrogate", []string{"codepoints", "--decode", "0xD800"}, textx.ErrInvalidCodepoint, ""},
		{"bad codepoint", []string{"codepoints", "--decode", "U+XYZ"}, nil, "INVALID_INPUT"},
		{"repeat over limit", []string{"repeat", "a", "10001"}, nil, "OUT_OF_RANGE"},
		{"non numeric index", []string{"slice", "gleam", "one", "2"}, nil, "INVALID_INPUT"},
		{"unknown form", []string{"normalize", "--form", "NFX", "a"}, nil, "INVALID_INPUT"},
		{"bad language", []string{"--lang", "not a tag!", "upper", "a"}, nil, "INVALID_INPUT"},
		{"bad log level", []string{"--log-level", "loud", "length", "a"}, nil, "INVALID_CONFIG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error = %v, want %v", err, tt.sentinel)
			}
			if tt.code != "" {
				if got := errorCode(err); got != tt.code {
					t.Errorf("code = %q, want %q", got, tt.code)
				}
			}
			if !strings.Contains(stderr, "Error: ") {
				t.Errorf("stderr = %q, want error line", stderr)
			}
		})
	}
}

func TestPadFlagsExclusive(t *testing.T) {
	if _, _, err := execute(t, "pad", "--end", "--center", "a", "3"); err == nil {
		t.Error("expected error for --end with --center")
	}
}

func TestDiscoveredConfig(t *testing.T) {
	dir := t.TempDir()
	content := "[text]\npad = \"*\"\nellipsis = \"~\"\n"
	if err := os.WriteFile(filepath.Join(dir, "textkit.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TEXTKIT_CONFIG_DIR", dir)

	stdout, _, err := execute(t, "pad", "ab", "4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "**ab\n" {
		t.Errorf("pad output = %q, want %q", stdout, "**ab\n")
	}

	stdout, _, err = execute(t, "truncate", "Hello, World", "6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "Hello~\n" {
		t.Errorf("truncate output = %q, want %q", stdout, "Hello~\n")
	}
}

func TestConfigFlag(t *testing.T) {
	path := writeConfig(t, "custom.yaml", "text:\n  pad: \"0\"\n")

	stdout, _, err := execute(t, "--config", path, "pad", "7", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "007\n" {
		t.Errorf("output = %q, want %q", stdout, "007\n")
	}
}

func TestConfigFlagMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.toml")
	if _, _, err := execute(t, "--config", missing, "length", "a"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestInvalidConfigValue(t *testing.T) {
	path := writeConfig(t, "textkit.toml", "[log]\nlevel = \"loud\"\n")

	_, _, err := execute(t, "--config", path, "length", "a")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("error = %v, want mention of log.level", err)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "textkit.toml", "[text]\npad = \"*\"\n")
	t.Setenv("TEXTKIT_TEXT_PAD", "-")

	stdout, _, err := execute(t, "--config", path, "pad", "x", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "--x\n" {
		t.Errorf("output = %q, want %q", stdout, "--x\n")
	}
}

func TestLanguageFlag(t *testing.T) {
	stdout, _, err := execute(t, "--lang", "tr", "upper", "istanbul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "\u0130STANBUL\n" {
		t.Errorf("output = %q, want %q", stdout, "\u0130STANBUL\n")
	}

	stdout, _, err = execute(t, "upper", "istanbul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "ISTANBUL\n" {
		t.Errorf("output without --lang = %q, want %q", stdout, "ISTANBUL\n")
	}
}

func TestLogging(t *testing.T) {
	t.Run("silent by default", func(t *testing.T) {
		_, stderr, err := execute(t, "length", "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stderr != "" {
			t.Errorf("stderr = %q, want empty", stderr)
		}
	})

	t.Run("debug shows timer", func(t *testing.T) {
		_, stderr, err := execute(t, "--log-level", "debug", "length", "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, "length completed") {
			t.Errorf("stderr = %q, want timer entry", stderr)
		}
		if !strings.Contains(stderr, "configuration loaded") {
			t.Errorf("stderr = %q, want setup entry", stderr)
		}
	})

	t.Run("json format", func(t *testing.T) {
		_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "length", "abc")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, `"correlation_id"`) {
			t.Errorf("stderr = %q, want correlation id", stderr)
		}
	})

	t.Run("failures are logged", func(t *testing.T) {
		_, stderr, err := execute(t, "repeat", "a", "20000")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(stderr, "OUT_OF_RANGE") && !strings.Contains(stderr, "out of range") {
			t.Errorf("stderr = %q, want logged failure", stderr)
		}
	})
}

func TestInspect(t *testing.T) {
	stdout, _, err := execute(t, "inspect", "ae\u0301")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"GRAPHEME", "U+0065 U+0301", "2 graphemes, 3 codepoints, 4 bytes, width 2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("inspect output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := execute(t, "--lang", "de", "config")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`log_level = "warn"`, `language = "de"`, `pad = " "`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = execute(t, "config", "--yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "log_format: text") {
		t.Errorf("yaml output missing log_format:\n%s", stdout)
	}
}

func TestConfigPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEXTKIT_CONFIG_DIR", dir)

	stdout, _, err := execute(t, "config", "paths")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, filepath.Join(dir, "textkit.toml")) {
		t.Errorf("paths output = %q, want %s", stdout, filepath.Join(dir, "textkit.toml"))
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version", "--components")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "textkit v"+version.Toolkit) {
		t.Errorf("version output = %q", stdout)
	}
	if !strings.Contains(stdout, version.Textx) {
		t.Errorf("version output missing textx version: %q", stdout)
	}
}
