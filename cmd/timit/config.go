package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/colorstring"
	"golang.org/x/term"
)

const (
	EnvLogLevel      = "TIMIT_LOG_LEVEL"
	EnvCLINoColor    = "TIMIT_CLI_NO_COLOR"
	EnvCLIForceColor = "TIMIT_CLI_FORCE_COLOR"

	defaultLogLevel = "off"
)

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// newLogger builds the diagnostic logger. Diagnostics go to w so they never
// mix with the report.
func newLogger(level string, w io.Writer) (hclog.Logger, error) {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "timit",
		Level:  lvl,
		Output: w,
	}), nil
}

// colorize decides whether the report is colored. A color flag wins over the
// environment. When neither asks for anything, color is used only when out is
// a terminal.
func colorize(noColor, forceColor bool, out io.Writer) *colorstring.Colorize {
	if !noColor && !forceColor {
		noColor = os.Getenv(EnvCLINoColor) != ""
		forceColor = os.Getenv(EnvCLIForceColor) != ""
	}

	enabled := false
	switch {
	case noColor:
	case forceColor:
		enabled = true
	default:
		if f, ok := out.(*os.File); ok {
			enabled = term.IsTerminal(int(f.Fd()))
		}
	}

	return &colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !enabled,
		Reset:   true,
	}
}
