package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/prompt-bench/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "./build/cql", cfg.Executable)
	assert.Equal(t, "demo/examples", cfg.ExamplesDir)
	assert.Equal(t, "demo/temp", cfg.ScratchDir)
	assert.Equal(t, "benchmark_report.md", cfg.ReportFile)
	assert.Equal(t, 30*time.Second, cfg.RunTimeout)

	// Reference matrix: LOCAL_ONLY against every goal.
	require.Len(t, cfg.Configurations, 4)
	for _, c := range cfg.Configurations {
		assert.Equal(t, model.ModeLocalOnly, c.Mode)
		assert.Equal(t, "software", c.Domain)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	data := `
executable: /opt/cql/bin/cql
examples_dir: /data/prompts
configurations:
  - mode: FULL_LLM
    goal: REDUCE_TOKENS
    domain: legal
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/cql/bin/cql", cfg.Executable)
	assert.Equal(t, "/data/prompts", cfg.ExamplesDir)

	// The run timeout is a fixed default, not a file setting.
	assert.Equal(t, 30*time.Second, cfg.RunTimeout)

	require.Len(t, cfg.Configurations, 1)
	assert.Equal(t, model.ModeFullLLM, cfg.Configurations[0].Mode)
	assert.Equal(t, model.GoalReduceTokens, cfg.Configurations[0].Goal)
	assert.Equal(t, "legal", cfg.Configurations[0].Domain)

	// Unset fields keep their defaults.
	assert.Equal(t, "demo/temp", cfg.ScratchDir)
	assert.Equal(t, "benchmark_report.md", cfg.ReportFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("executable: [oops\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
