/*
PURPOSE:
  Writes benchmark outcome rows to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output to CSV alongside the markdown report.
  - Keep file handle open for flushing.

  Implementation-discovered:
  - Overwrite on each run; the report is regenerated fresh anyway.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: output.Row

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Mutex for safety if the engine ever runs files in parallel.

USAGE:
  w, err := output.NewCSVWriter("benchmark_results.csv")
  w.Write(row)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update header and record conversion.

RELATED FILES:
  - internal/output/row.go

MAINTENANCE:
  - Update Write() mapping when Row changes.
*/

package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
)

// CSVWriter handles writing outcome rows to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter.
// It overwrites the file if it exists.
func NewCSVWriter(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)

	header := []string{
		"file", "mode", "goal", "domain",
		"success", "execution_time_s", "size_reduction_pct", "error",
	}
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single row to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(r Row) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	reduction := "N/A"
	if r.Reduction != nil {
		reduction = fmt.Sprintf("%.1f", *r.Reduction)
	}

	record := []string{
		r.File,
		r.Mode,
		r.Goal,
		r.Domain,
		fmt.Sprintf("%t", r.Success),
		fmt.Sprintf("%.4f", r.Seconds),
		reduction,
		r.Error,
	}

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
