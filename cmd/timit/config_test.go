package main

import (
	"bytes"
	"testing"

	"github.com/shoenig/test/must"
)

func TestColorize(t *testing.T) {
	var buf bytes.Buffer

	must.True(t, colorize(true, false, &buf).Disable)
	must.False(t, colorize(false, true, &buf).Disable)
	// not a terminal
	must.True(t, colorize(false, false, &buf).Disable)
	// explicit opt-out wins
	must.True(t, colorize(true, true, &buf).Disable)
}

func TestColorize_Env(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(EnvCLIForceColor, "1")
	must.False(t, colorize(false, false, &buf).Disable)

	t.Setenv(EnvCLINoColor, "1")
	must.True(t, colorize(false, false, &buf).Disable)
}

func TestColorize_FlagsOverrideEnv(t *testing.T) {
	var buf bytes.Buffer

	t.Setenv(EnvCLINoColor, "1")
	must.False(t, colorize(false, true, &buf).Disable)

	t.Setenv(EnvCLINoColor, "")
	t.Setenv(EnvCLIForceColor, "1")
	must.True(t, colorize(true, false, &buf).Disable)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger("off", &buf)
	must.NoError(t, err)
	logger.Error("hidden")
	must.Eq(t, "", buf.String())

	logger, err = newLogger("debug", &buf)
	must.NoError(t, err)
	must.True(t, logger.IsDebug())
	logger.Debug("shown")
	must.StrContains(t, buf.String(), "timit: shown")

	_, err = newLogger("loud", &buf)
	must.Error(t, err)
}

func TestEnvOr(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	must.Eq(t, defaultLogLevel, envOr(EnvLogLevel, defaultLogLevel))

	t.Setenv(EnvLogLevel, "trace")
	must.Eq(t, "trace", envOr(EnvLogLevel, defaultLogLevel))

	root := NewRootCmd()
	must.Eq(t, "trace", root.Flags().Lookup("log-level").DefValue)
}
