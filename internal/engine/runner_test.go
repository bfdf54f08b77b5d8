package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/prompt-bench/internal/config"
	"github.com/daryltucker/prompt-bench/internal/model"
)

// benchConfig builds a config rooted in temp directories, pointed at
// the given stub compiler.
func benchConfig(t *testing.T, executable string) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Executable = executable
	cfg.ExamplesDir = filepath.Join(root, "examples")
	cfg.ScratchDir = filepath.Join(root, "temp")
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.RunTimeout = 5 * time.Second

	require.NoError(t, os.MkdirAll(cfg.ExamplesDir, 0755))
	return cfg
}

func writeExample(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	// Stub compiler: always succeeds and writes a 600-char output.
	bin := writeScript(t, `head -c 600 /dev/zero | tr '\0' 'x' > "$3"`+"\nexit 0\n")
	cfg := benchConfig(t, bin)
	writeExample(t, cfg.ExamplesDir, "sample.llm", strings.Repeat("a", 1000))

	require.NoError(t, Run(cfg))

	reportPath := filepath.Join(cfg.OutputDir, cfg.ReportFile)
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	report := string(data)

	// 1000 chars in, 600 out: exactly 40.0% reduction for every row.
	assert.Contains(t, report, "| 40.0% |")
	assert.Contains(t, report, "- **Average size reduction**: 40.0%")
	assert.Contains(t, report, "- **Files processed**: 1")
	assert.Contains(t, report, "- **Successful optimizations**: 4")
	assert.Contains(t, report, "- **Success rate**: 100.0%")

	// One table row per configuration.
	assert.Equal(t, len(cfg.Configurations), strings.Count(report, "| LOCAL_ONLY |"))

	// Result rows are streamed alongside the report.
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "benchmark_results.csv"))
	assert.FileExists(t, filepath.Join(cfg.OutputDir, "benchmark_results.json"))
}

func TestRunNoExampleFiles(t *testing.T) {
	bin := writeScript(t, "exit 0\n")
	cfg := benchConfig(t, bin)

	err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .llm files")

	// A setup error must not leave a report behind.
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, cfg.ReportFile))
}

func TestRunMissingExamplesDir(t *testing.T) {
	bin := writeScript(t, "exit 0\n")
	cfg := benchConfig(t, bin)
	require.NoError(t, os.Remove(cfg.ExamplesDir))

	err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "examples directory not found")
}

func TestRunMissingExecutable(t *testing.T) {
	cfg := benchConfig(t, filepath.Join(t.TempDir(), "no-such-cql"))
	writeExample(t, cfg.ExamplesDir, "sample.llm", "content")

	err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executable not found")
}

func TestRunOptimizationValidationFailure(t *testing.T) {
	bin := writeScript(t, "echo should-not-run\nexit 0\n")
	cfg := benchConfig(t, bin)
	input := writeExample(t, cfg.ExamplesDir, "sample.llm", "content")

	e := New(cfg)
	out := e.RunOptimization(input, model.Configuration{
		Mode: "BOGUS", Goal: model.GoalBalanced, Domain: "software",
	})

	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "invalid mode")
	assert.Zero(t, out.Duration)
	assert.Empty(t, out.Stdout, "process must not be spawned on validation failure")
}

func TestRunOptimizationTimeout(t *testing.T) {
	bin := writeScript(t, "exec sleep 5\n")
	cfg := benchConfig(t, bin)
	cfg.RunTimeout = 150 * time.Millisecond
	input := writeExample(t, cfg.ExamplesDir, "sample.llm", "content")

	e := New(cfg)
	out := e.RunOptimization(input, cfg.Configurations[0])

	assert.False(t, out.Success)
	assert.Equal(t, "Timeout", out.Error)
	assert.Equal(t, cfg.RunTimeout, out.Duration)
}

func TestRunOptimizationCompilerFailure(t *testing.T) {
	bin := writeScript(t, "echo bad input >&2\nexit 2\n")
	cfg := benchConfig(t, bin)
	input := writeExample(t, cfg.ExamplesDir, "sample.llm", "content")

	e := New(cfg)
	out := e.RunOptimization(input, cfg.Configurations[0])

	assert.False(t, out.Success)
	assert.Empty(t, out.Error)
	assert.Equal(t, "bad input\n", out.Stderr)
	assert.Nil(t, out.OutputStats)
}

func TestRunOptimizationSanitizesOutputName(t *testing.T) {
	bin := writeScript(t, `echo optimized > "$3"`+"\nexit 0\n")
	cfg := benchConfig(t, bin)
	input := writeExample(t, cfg.ExamplesDir, "my example!.llm", "content")

	e := New(cfg)
	out := e.RunOptimization(input, cfg.Configurations[0])

	require.True(t, out.Success)
	require.NotNil(t, out.OutputStats)
	assert.FileExists(t, filepath.Join(cfg.ScratchDir, "optimized_my_example_.txt"))
}

func TestBenchmarkFileKeepsConfigurationOrder(t *testing.T) {
	bin := writeScript(t, `echo optimized > "$3"`+"\nexit 0\n")
	cfg := benchConfig(t, bin)
	input := writeExample(t, cfg.ExamplesDir, "sample.llm", "content")

	result := New(cfg).BenchmarkFile(input)

	require.Len(t, result.Outcomes, len(cfg.Configurations))
	for i, out := range result.Outcomes {
		assert.Equal(t, cfg.Configurations[i], out.Config)
	}
	assert.Equal(t, input, result.SourceFile)
	assert.Equal(t, 7, result.OriginalStats.Chars)
}
