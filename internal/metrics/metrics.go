/*
PURPOSE:
  Collects file statistics for benchmark inputs and outputs and
  computes derived metrics (size reduction percentage).

REQUIREMENTS:
  User-specified:
  - Stats: byte size, line count, character count.
  - Size reduction as a percentage of the original character count.

  Implementation-discovered:
  - A missing file yields zero-valued stats, never an error; the
    orchestrator probes output paths that may legitimately not exist.
  - Character count means runes, not bytes.
  - Division by zero is an explicit policy: reduction of an empty
    original is 0.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine, internal/report
  - Produces: internal/model.FileStats

ERROR HANDLING:
  - None surfaced; absence collapses to zero stats.

IMPLEMENTATION RULES:
  - Line counting matches splitlines semantics: a trailing newline
    does not open a new line, an empty file has zero lines.

USAGE:
  st := metrics.Stats("demo/examples/query.llm")
  pct := metrics.SizeReduction(orig.Chars, st.Chars)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update when adding new per-file metrics.
*/

package metrics

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/daryltucker/prompt-bench/internal/model"
)

// Stats snapshots a file. Missing or unreadable paths yield zero stats.
func Stats(path string) model.FileStats {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return model.FileStats{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return model.FileStats{}
	}

	content := string(data)
	return model.FileStats{
		Size:  info.Size(),
		Lines: countLines(content),
		Chars: utf8.RuneCountInString(content),
	}
}

// SizeReduction returns the percentage decrease from original to
// optimized. Defined as 0 when original is 0.
func SizeReduction(original, optimized int) float64 {
	if original <= 0 {
		return 0
	}
	return float64(original-optimized) / float64(original) * 100
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
