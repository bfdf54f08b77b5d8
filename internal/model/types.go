/*
PURPOSE:
  Defines the core data structures used throughout Prompt Bench.
  These models represent benchmark configurations, file statistics,
  and per-run outcomes.

REQUIREMENTS:
  User-specified:
  - Record success, execution time, captured output per run.
  - Track the configuration (mode/goal/domain) used for each run.
  - Snapshot input/output file statistics (size, lines, chars).

  Implementation-discovered:
  - Need JSON tags for the JSONL result writer.
  - Mode and Goal are closed enumerations; typed strings keep call
    sites honest without losing the wire representation.

ARCHITECTURE INTEGRATION:
  - Used by: internal/validate, internal/engine, internal/metrics,
    internal/report, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Duration for high precision timing.
  - Outcomes are never mutated after creation.

USAGE:
  out := model.Outcome{Config: cfg, Success: true}

SELF-HEALING INSTRUCTIONS:
  - If new metrics are needed, add field and update CSV/JSON writers
    and the report renderer.

RELATED FILES:
  - internal/output/csv.go
  - internal/output/json.go
  - internal/report/report.go

MAINTENANCE:
  - Update when the compiler grows new modes or goals.
*/

package model

import (
	"time"
)

// Mode controls how much LLM interaction the compiler performs.
type Mode string

const (
	ModeLocalOnly Mode = "LOCAL_ONLY"
	ModeCachedLLM Mode = "CACHED_LLM"
	ModeFullLLM   Mode = "FULL_LLM"
	ModeAsyncLLM  Mode = "ASYNC_LLM"
)

// Goal is the optimization objective passed to the compiler.
type Goal string

const (
	GoalReduceTokens    Goal = "REDUCE_TOKENS"
	GoalImproveAccuracy Goal = "IMPROVE_ACCURACY"
	GoalBalanced        Goal = "BALANCED"
	GoalDomainSpecific  Goal = "DOMAIN_SPECIFIC"
)

// Modes lists every valid mode, in enumeration order.
func Modes() []Mode {
	return []Mode{ModeLocalOnly, ModeCachedLLM, ModeFullLLM, ModeAsyncLLM}
}

// Goals lists every valid goal, in enumeration order.
func Goals() []Goal {
	return []Goal{GoalReduceTokens, GoalImproveAccuracy, GoalBalanced, GoalDomainSpecific}
}

// Configuration is one cell of the benchmark matrix. Immutable once built.
type Configuration struct {
	Mode   Mode   `json:"mode" yaml:"mode"`
	Goal   Goal   `json:"goal" yaml:"goal"`
	Domain string `json:"domain" yaml:"domain"`
}

// FileStats is a point-in-time snapshot of a file. Zero-valued when the
// file does not exist.
type FileStats struct {
	Size  int64 `json:"size"`
	Lines int   `json:"lines"`
	Chars int   `json:"chars"`
}

// Outcome records one optimization attempt for one (file, configuration)
// pair. Created once, never mutated.
type Outcome struct {
	Success  bool          `json:"success"`
	Duration time.Duration `json:"duration"`
	Stdout   string        `json:"stdout,omitempty"`
	Stderr   string        `json:"stderr,omitempty"`
	Error    string        `json:"error,omitempty"` // Validation message, "Timeout", etc.
	Config   Configuration `json:"config"`

	// OutputStats is set only when the run succeeded and the output
	// file exists.
	OutputStats *FileStats `json:"output_stats,omitempty"`
}

// FileResult groups all outcomes for one input file. Outcomes keep the
// configuration order so the report is reproducible.
type FileResult struct {
	SourceFile    string    `json:"file"`
	OriginalStats FileStats `json:"original_stats"`
	Outcomes      []Outcome `json:"optimizations"`
}
