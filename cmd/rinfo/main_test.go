package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"

	"github.com/mrzor/rinfo/internal/config"
)

// run executes rinfo with args and a config path that does not exist, so
// the user's own config file never leaks into tests.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	argv := []string{"rinfo"}
	if len(args) == 0 || args[0] != "caller" {
		argv = append(argv, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	}
	err := app.Run(append(argv, args...))
	return stdout.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr cli.ExitCoder
	require.True(t, errors.As(err, &exitErr), "want an exit error, got %v", err)
	return exitErr.ExitCode()
}

func TestCallerSelf(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("no process argument source on " + runtime.GOOS)
	}

	out, err := run(t, "caller", strconv.Itoa(os.Getpid()))
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(os.Args[0])+"\n", out)
}

func TestCallerBufferTooSmall(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("no process argument source on " + runtime.GOOS)
	}

	out, err := run(t, "caller", "--buffer-size", "1", strconv.Itoa(os.Getpid()))
	assert.Empty(t, out)
	assert.Equal(t, exitBufferSmall, exitCode(t, err))
}

func TestCallerFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"caller", "abc"}},
		{"negative pid", []string{"caller", "--", "-1"}},
		{"too many arguments", []string{"caller", "1", "2"}},
		{"missing process", []string{"caller", strconv.Itoa(1<<22 + 1)}},
		{"negative buffer", []string{"caller", "--buffer-size", "-4", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			assert.Empty(t, out)
			assert.Equal(t, exitFailed, exitCode(t, err))
		})
	}
}

func TestProbeEverythingOmittedJSON(t *testing.T) {
	out, err := run(t, "-c", "-r", "-m", "-p", "-n", "-o", "-a", "-i", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "{}", out)
}

func TestProbeAttributes(t *testing.T) {
	out, err := run(t, "-c", "-r", "-m", "-p", "-n", "-o", "-a", "-i",
		"--format", "json",
		"--attr", "answer=6 * 7",
		"--attr", "greeting=\"hi\"",
	)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, map[string]any{"answer": 42.0, "greeting": "hi"}, doc["attributes"])
}

func TestProbeTextWithoutArt(t *testing.T) {
	t.Setenv("0", "/bin/-fish")
	t.Setenv("USER", "tester")

	out, err := run(t, "-c", "-r", "-m", "-n", "-o", "-a", "-i")
	require.NoError(t, err)
	assert.Equal(t, "User: tester\nShell: fish\n", out)
}

func TestProbeRejectsBadInput(t *testing.T) {
	_, err := run(t, "--format", "yaml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "--attr", "noequals")
	assert.ErrorContains(t, err, "expected name=expression")

	_, err = run(t, "--attr", "bad=invalid syntax here")
	assert.ErrorContains(t, err, `"bad"`)
}

func TestLoadConfigPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("omitCpu: true\nformat: json\nlogLevel: debug\n"), 0o600))
	t.Setenv("RINFO_OMIT_RAM", "true")
	t.Setenv("RINFO_LOG_LEVEL", "error")

	var got *config.Config
	app := &cli.App{
		Flags: probeFlags(),
		Action: func(c *cli.Context) error {
			var err error
			got, err = loadConfig(c)
			return err
		},
	}

	require.NoError(t, app.Run([]string{"rinfo", "--config", path, "--format", "text", "-i", "--attr", "x=1"}))
	require.NotNil(t, got)
	assert.True(t, got.OmitCPU, "from file")
	assert.True(t, got.OmitRAM, "from environment")
	assert.True(t, got.OmitIP, "from flags")
	assert.False(t, got.OmitOS)
	assert.Equal(t, config.FormatText, got.Format, "flags override the file")
	assert.Equal(t, "error", got.LogLevel, "environment overrides the file")
	assert.Equal(t, []config.CustomAttribute{{Name: "x", Expression: "1"}}, got.CustomAttributes)
}

func TestLoadConfigExplicitFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("omitCpu: [\n"), 0o600))

	_, err := run(t, "--config", path)
	assert.ErrorContains(t, err, "parsing config file")
}
