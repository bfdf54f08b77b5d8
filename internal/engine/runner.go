/*
PURPOSE:
  High-level runner that orchestrates the benchmarking process.
  Loops through input files -> configurations and executes the
  compiler for each pair.

REQUIREMENTS:
  User-specified:
  - Run the full configuration matrix against every discovered file.
  - Log results to CSV/JSONL and render a markdown report.

  Implementation-discovered:
  - Validation and execution failures are recorded and the run
    continues; only setup problems abort.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/validate, internal/metrics, internal/report,
    internal/output

ERROR HANDLING:
  - Setup errors (missing executable, missing examples dir, zero
    matching files) abort before any report is written.
  - Per-configuration failures become failed Outcomes.

IMPLEMENTATION RULES:
  - Strictly sequential: one (file, configuration) pair completes
    before the next starts.
  - Outcome order inside a FileResult is the configuration order.

USAGE:
  err := engine.Run(cfg)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/process.go

MAINTENANCE:
  - Update iteration logic if parallelism is introduced; re-sort
    results into configuration order before rendering if so.
*/

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/daryltucker/prompt-bench/internal/config"
	"github.com/daryltucker/prompt-bench/internal/metrics"
	"github.com/daryltucker/prompt-bench/internal/model"
	"github.com/daryltucker/prompt-bench/internal/output"
	"github.com/daryltucker/prompt-bench/internal/report"
	"github.com/daryltucker/prompt-bench/internal/validate"
)

// Engine drives the compiler under test.
type Engine struct {
	Config *config.Config
}

// New creates a new Engine.
func New(cfg *config.Config) *Engine {
	return &Engine{Config: cfg}
}

// DiscoverExamples lists the .llm input files in the examples
// directory. A missing directory or an empty match set is an error:
// the whole run is pointless without inputs.
func (e *Engine) DiscoverExamples() ([]string, error) {
	info, err := os.Stat(e.Config.ExamplesDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("examples directory not found: %s", e.Config.ExamplesDir)
	}

	files, err := filepath.Glob(filepath.Join(e.Config.ExamplesDir, "*.llm"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", e.Config.ExamplesDir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .llm files found in %s", e.Config.ExamplesDir)
	}
	return files, nil
}

// RunOptimization executes one configuration against one input file.
// Every failure path yields a structured Outcome; nothing is thrown
// across this boundary.
func (e *Engine) RunOptimization(inputFile string, c model.Configuration) model.Outcome {
	if err := validate.Configuration(inputFile, c); err != nil {
		return model.Outcome{Error: err.Error(), Config: c}
	}

	stem := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
	safe := validate.SanitizeFilename(stem)

	if err := os.MkdirAll(e.Config.ScratchDir, 0755); err != nil {
		return model.Outcome{Error: fmt.Sprintf("failed to create scratch directory: %v", err), Config: c}
	}
	outputFile := filepath.Join(e.Config.ScratchDir, "optimized_"+safe+".txt")

	args := []string{
		"--optimize", inputFile, outputFile,
		"--mode", string(c.Mode),
		"--goal", string(c.Goal),
		"--domain", c.Domain,
		"--show-metrics",
		"--show-validation",
	}

	res, err := Exec(e.Config.Executable, args, e.Config.RunTimeout)
	if err != nil {
		return model.Outcome{Error: err.Error(), Duration: res.Elapsed, Config: c}
	}
	if res.TimedOut {
		return model.Outcome{Error: "Timeout", Duration: e.Config.RunTimeout, Config: c}
	}

	out := model.Outcome{
		Success:  res.ExitCode == 0,
		Duration: res.Elapsed,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Config:   c,
	}
	if out.Success {
		if _, err := os.Stat(outputFile); err == nil {
			st := metrics.Stats(outputFile)
			out.OutputStats = &st
		}
	}
	return out
}

// BenchmarkFile runs the full configuration matrix for one input file.
func (e *Engine) BenchmarkFile(path string) model.FileResult {
	output.Logger.Info("Benchmarking file", "file", filepath.Base(path))

	result := model.FileResult{
		SourceFile:    path,
		OriginalStats: metrics.Stats(path),
	}

	for _, c := range e.Config.Configurations {
		output.Logger.Info("Running configuration",
			"mode", c.Mode, "goal", c.Goal, "domain", c.Domain)
		result.Outcomes = append(result.Outcomes, e.RunOptimization(path, c))
	}
	return result
}

// Run executes the full benchmark suite.
func Run(cfg *config.Config) error {
	e := New(cfg)

	// Setup checks happen before anything is written.
	if _, err := os.Stat(cfg.Executable); err != nil {
		return fmt.Errorf("compiler executable not found at %s", cfg.Executable)
	}

	files, err := e.DiscoverExamples()
	if err != nil {
		return err
	}
	output.Logger.Info("Found example files", "dir", cfg.ExamplesDir, "count", len(files))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}

	csvPath := filepath.Join(cfg.OutputDir, "benchmark_results.csv")
	csvWriter, err := output.NewCSVWriter(csvPath)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath := filepath.Join(cfg.OutputDir, "benchmark_results.json")
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	var results []model.FileResult
	for _, file := range files {
		result := e.BenchmarkFile(file)
		results = append(results, result)

		for _, out := range result.Outcomes {
			row := output.NewRow(result, out)
			if err := csvWriter.Write(row); err != nil {
				output.Logger.Error("Failed to write result to CSV", "error", err)
			}
			if err := jsonWriter.Write(row); err != nil {
				output.Logger.Error("Failed to write result to JSON", "error", err)
			}
		}
	}

	text := report.Render(results, len(cfg.Configurations))
	reportPath := filepath.Join(cfg.OutputDir, cfg.ReportFile)
	if err := os.WriteFile(reportPath, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", reportPath, err)
	}

	sum := report.Summarize(results, len(cfg.Configurations))
	output.Logger.Info("Benchmark complete",
		"report", reportPath,
		"files", sum.Files,
		"successful", sum.Successes,
		"avg_time_s", fmt.Sprintf("%.3f", sum.AvgSeconds),
		"avg_reduction_pct", fmt.Sprintf("%.1f", sum.AvgReduction),
		"success_rate_pct", fmt.Sprintf("%.1f", sum.SuccessRate),
	)

	return nil
}
