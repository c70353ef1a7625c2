package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	configPath = ""
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommand(t *testing.T) {
	for _, impl := range []string{"tree", "heap"} {
		out, logs, err := execute(t, "check", "--impl", impl, "--size", "30", "--log-format", "json")
		require.NoError(t, err)
		assert.Equal(t, impl+": all 30 values passed\n", out)
		assert.Contains(t, logs, `"impl":"`+impl+`"`)
		assert.Contains(t, logs, "remove passed")
	}
}

func TestCheckCommandInvalidImpl(t *testing.T) {
	_, _, err := execute(t, "check", "--impl", "list")
	require.ErrorContains(t, err, "impl must be one of tree, heap")
}

func TestCheckCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pqcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("impl: heap\ncheck:\n  size: 12\n"), 0o600))
	out, _, err := execute(t, "check", "--config", path, "--log-level", "warn")
	require.NoError(t, err)
	assert.Equal(t, "heap: all 12 values passed\n", out)
}

func TestBenchCommand(t *testing.T) {
	out, _, err := execute(t, "bench", "--size", "300", "--every", "100", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "tree")
	assert.Contains(t, out, "heap")
	assert.Contains(t, out, "200")

	_, _, err = execute(t, "bench", "--every", "0")
	require.ErrorContains(t, err, "bench.every must be positive")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pqcheck dev\n", out)
}
