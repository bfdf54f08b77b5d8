/*
PURPOSE:
  Bounded subprocess execution for the compiler under test.
  Spawns the process, enforces a wall-clock timeout, and captures
  stdout/stderr/exit status.

REQUIREMENTS:
  User-specified:
  - Hard timeout; on expiry the process is killed and the run is
    classified as timed out with elapsed equal to the bound.
  - A non-zero exit code is a reportable result, not an error.

  Implementation-discovered:
  - Arguments are passed as a discrete vector, never through a
    shell. Input filenames reach this layer verbatim and must not be
    interpretable.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go
  - Uses: os/exec with context deadlines.

ERROR HANDLING:
  - The error return covers spawn failures only (missing binary,
    permission). Everything after a successful start is expressed in
    ExecResult.

IMPLEMENTATION RULES:
  - Use exec.CommandContext + context.WithTimeout.
  - Capture stdout and stderr into separate buffers.

USAGE:
  res, err := engine.Exec("./build/cql", args, 30*time.Second)

SELF-HEALING INSTRUCTIONS:
  - If runs hang past the timeout, check that the compiler does not
    leave grandchildren holding the pipes open.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - Update if streaming output consumption is ever needed.
*/

package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// ExecResult captures one subprocess invocation.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
	TimedOut bool
}

// Exec runs bin with args, bounded by timeout. The argument vector is
// handed to the OS as-is; nothing is shell-interpreted.
func Exec(bin string, args []string, timeout time.Duration) (ExecResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	res := ExecResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.TimedOut = true
		res.Elapsed = timeout
		res.ExitCode = -1
		return res, nil
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Non-zero exit is a normal, reportable outcome.
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		// Spawn failure: binary missing, not executable, etc.
		return res, err
	}

	res.ExitCode = 0
	return res, nil
}
