/*
PURPOSE:
  Defines the configuration structure and loading logic for Prompt Bench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of the compiler executable, input/output
    directories, and the benchmark configuration matrix.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Every path the harness touches must be injectable so the core can
    run against temporary directories in tests.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default config files fall back to DefaultConfig().

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults mirror the reference layout (demo/examples, demo/temp,
    30s run timeout, LOCAL_ONLY matrix).

USAGE:
  cfg, err := config.Load("prompt_bench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/run.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/prompt-bench/internal/model"
)

// Config represents the full configuration for Prompt Bench.
type Config struct {
	// Executable is the path to the compiler binary under test.
	Executable string `yaml:"executable"`
	// ExamplesDir is scanned for *.llm input files.
	ExamplesDir string `yaml:"examples_dir"`
	// ScratchDir receives the sanitized optimized output files.
	ScratchDir string `yaml:"scratch_dir"`
	// OutputDir receives the report and the CSV/JSONL result rows.
	OutputDir  string `yaml:"output_dir"`
	ReportFile string `yaml:"report_file"`
	// RunTimeout bounds a single compiler invocation. Fixed at 30s;
	// not part of the file format, but injectable for tests.
	RunTimeout time.Duration `yaml:"-"`
	// Configurations is the matrix executed for every input file,
	// in order.
	Configurations []model.Configuration `yaml:"configurations"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Executable:  "./build/cql",
		ExamplesDir: "demo/examples",
		ScratchDir:  "demo/temp",
		OutputDir:   ".",
		ReportFile:  "benchmark_report.md",
		RunTimeout:  30 * time.Second,
		Configurations: []model.Configuration{
			{Mode: model.ModeLocalOnly, Goal: model.GoalBalanced, Domain: "software"},
			{Mode: model.ModeLocalOnly, Goal: model.GoalReduceTokens, Domain: "software"},
			{Mode: model.ModeLocalOnly, Goal: model.GoalImproveAccuracy, Domain: "software"},
			{Mode: model.ModeLocalOnly, Goal: model.GoalDomainSpecific, Domain: "software"},
		},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"bench.yaml", "bench.conf", "prompt_bench.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
