package output

import (
	"github.com/daryltucker/prompt-bench/internal/metrics"
	"github.com/daryltucker/prompt-bench/internal/model"
)

// Row is the flat per-outcome record emitted to CSV and JSONL.
type Row struct {
	File      string   `json:"file"`
	Mode      string   `json:"mode"`
	Goal      string   `json:"goal"`
	Domain    string   `json:"domain"`
	Success   bool     `json:"success"`
	Seconds   float64  `json:"execution_time_s"`
	Reduction *float64 `json:"size_reduction_pct,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// NewRow flattens one outcome against its file's original stats.
func NewRow(r model.FileResult, out model.Outcome) Row {
	row := Row{
		File:    r.SourceFile,
		Mode:    string(out.Config.Mode),
		Goal:    string(out.Config.Goal),
		Domain:  out.Config.Domain,
		Success: out.Success,
		Seconds: out.Duration.Seconds(),
		Error:   out.Error,
	}
	if out.OutputStats != nil {
		pct := metrics.SizeReduction(r.OriginalStats.Chars, out.OutputStats.Chars)
		row.Reduction = &pct
	}
	return row
}
