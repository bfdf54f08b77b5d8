/*
PURPOSE:
  Renders the aggregated benchmark report: an executive summary over
  all outcomes plus a per-file detail table.

REQUIREMENTS:
  User-specified:
  - Executive summary: files processed, successful optimizations,
    average execution time (successes only), average size reduction
    (outcomes with output stats only), success rate over the full
    matrix.
  - Per-file table: one row per configuration, in original order.

  Implementation-discovered:
  - Rows without output stats show "N/A" and the recorded error, or
    "FAILED" when no specific error was captured.
  - Every division is guarded; an empty run renders zeros.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Consumes: internal/model.FileResult

ERROR HANDLING:
  - None. Pure computation over the result slice.

IMPLEMENTATION RULES:
  - Derived, stateless text artifact: regenerated fresh from the
    results each run, no independent lifecycle.

USAGE:
  text := report.Render(results, len(cfg.Configurations))

SELF-HEALING INSTRUCTIONS:
  - If table columns change, update the header and row format
    together.

RELATED FILES:
  - internal/metrics/metrics.go

MAINTENANCE:
  - Update when adding new summary metrics.
*/

package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/daryltucker/prompt-bench/internal/metrics"
	"github.com/daryltucker/prompt-bench/internal/model"
)

// Summary aggregates every outcome across every file.
type Summary struct {
	Files        int
	Successes    int
	AvgSeconds   float64
	AvgReduction float64
	SuccessRate  float64 // percentage over files x configsPerFile
}

// Summarize computes the executive summary numbers.
func Summarize(results []model.FileResult, configsPerFile int) Summary {
	s := Summary{Files: len(results)}

	var totalSeconds float64
	var reductions []float64

	for _, r := range results {
		for _, out := range r.Outcomes {
			if !out.Success {
				continue
			}
			s.Successes++
			totalSeconds += out.Duration.Seconds()
			if out.OutputStats != nil {
				reductions = append(reductions,
					metrics.SizeReduction(r.OriginalStats.Chars, out.OutputStats.Chars))
			}
		}
	}

	if s.Successes > 0 {
		s.AvgSeconds = totalSeconds / float64(s.Successes)
	}
	if len(reductions) > 0 {
		var sum float64
		for _, p := range reductions {
			sum += p
		}
		s.AvgReduction = sum / float64(len(reductions))
	}
	if total := s.Files * configsPerFile; total > 0 {
		s.SuccessRate = float64(s.Successes) / float64(total) * 100
	}
	return s
}

// Render produces the full markdown report.
func Render(results []model.FileResult, configsPerFile int) string {
	var b strings.Builder

	b.WriteString("# Meta-Prompt Compiler Benchmark Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	s := Summarize(results, configsPerFile)
	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "- **Files processed**: %d\n", s.Files)
	fmt.Fprintf(&b, "- **Successful optimizations**: %d\n", s.Successes)
	fmt.Fprintf(&b, "- **Average execution time**: %.3fs\n", s.AvgSeconds)
	fmt.Fprintf(&b, "- **Average size reduction**: %.1f%%\n", s.AvgReduction)
	fmt.Fprintf(&b, "- **Success rate**: %.1f%%\n\n", s.SuccessRate)

	b.WriteString("## Detailed Results\n\n")

	for _, r := range results {
		fmt.Fprintf(&b, "### %s\n\n", filepath.Base(r.SourceFile))
		fmt.Fprintf(&b, "**Original**: %d chars, %d lines\n\n",
			r.OriginalStats.Chars, r.OriginalStats.Lines)

		b.WriteString("| Mode | Goal | Domain | Success | Time (s) | Size Reduction | Status |\n")
		b.WriteString("|------|------|---------|---------|----------|----------------|--------|\n")

		for _, out := range r.Outcomes {
			success := "❌"
			if out.Success {
				success = "✅"
			}

			reduction := "N/A"
			status := "FAILED"
			if out.Success && out.OutputStats != nil {
				pct := metrics.SizeReduction(r.OriginalStats.Chars, out.OutputStats.Chars)
				reduction = fmt.Sprintf("%.1f%%", pct)
				status = "SUCCESS"
			} else if out.Error != "" {
				status = out.Error
			}

			fmt.Fprintf(&b, "| %s | %s | %s | %s | %.3f | %s | %s |\n",
				out.Config.Mode, out.Config.Goal, out.Config.Domain,
				success, out.Duration.Seconds(), reduction, status)
		}
		b.WriteString("\n")
	}

	return b.String()
}
