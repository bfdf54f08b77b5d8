package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable /bin/sh stub.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("sh stub scripts are not available on Windows")
	}
	path := filepath.Join(t.TempDir(), "stub.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestExecSuccess(t *testing.T) {
	bin := writeScript(t, "echo hello\nexit 0\n")

	res, err := Exec(bin, nil, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.False(t, res.TimedOut)
}

func TestExecNonZeroExitIsNotAnError(t *testing.T) {
	bin := writeScript(t, "echo diagnostics >&2\nexit 3\n")

	res, err := Exec(bin, nil, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "diagnostics\n", res.Stderr)
	assert.False(t, res.TimedOut)
}

func TestExecPassesArgumentVector(t *testing.T) {
	bin := writeScript(t, `printf '%s|' "$@"`+"\n")

	// Shell-significant characters must arrive verbatim, uninterpreted.
	res, err := Exec(bin, []string{"--optimize", "a b.llm", "$(whoami)"}, 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "--optimize|a b.llm|$(whoami)|", res.Stdout)
}

func TestExecTimeout(t *testing.T) {
	bin := writeScript(t, "exec sleep 5\n")

	timeout := 200 * time.Millisecond
	start := time.Now()
	res, err := Exec(bin, nil, timeout)
	require.NoError(t, err)

	assert.True(t, res.TimedOut)
	assert.Equal(t, timeout, res.Elapsed)
	assert.Less(t, time.Since(start), 3*time.Second, "process must be killed at the deadline")
}

func TestExecMissingBinary(t *testing.T) {
	_, err := Exec(filepath.Join(t.TempDir(), "no-such-binary"), nil, time.Second)
	assert.Error(t, err)
}
