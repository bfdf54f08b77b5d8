/*
PURPOSE:
  Validates benchmark parameters before any subprocess is spawned.
  A bad mode/goal/domain or a missing input file must never reach
  the compiler command line.

REQUIREMENTS:
  User-specified:
  - Reject modes and goals outside the closed enumerations.
  - Reject domains with characters outside [A-Za-z0-9_-] or longer
    than 64 characters.
  - Reject missing input files and paths that are not regular files.

  Implementation-discovered:
  - Check order is fixed: file existence, file type, mode, goal,
    domain. The first failing check wins; no error accumulation.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (before building the argument vector)
  - Uses: internal/model enumerations

ERROR HANDLING:
  - Returns a plain error describing the first failure; nil on
    success. Never panics.

IMPLEMENTATION RULES:
  - No side effects. No filesystem writes.
  - Error messages carry the offending value and the allowed set.

USAGE:
  if err := validate.Parameters(file, mode, goal, domain); err != nil { ... }

SELF-HEALING INSTRUCTIONS:
  - If the compiler grows new modes/goals, extend internal/model and
    the messages follow automatically.

RELATED FILES:
  - internal/model/types.go
  - internal/engine/runner.go

MAINTENANCE:
  - Keep the check order stable; the report surfaces these messages.
*/

package validate

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/daryltucker/prompt-bench/internal/model"
)

const maxDomainLen = 64

var domainPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Parameters checks an input file and a mode/goal/domain triple.
// Checks run in a fixed order and the first failure is returned.
func Parameters(inputFile string, mode model.Mode, goal model.Goal, domain string) error {
	info, err := os.Stat(inputFile)
	if err != nil {
		return fmt.Errorf("input file does not exist: %s", inputFile)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input path is not a file: %s", inputFile)
	}

	if !validMode(mode) {
		return fmt.Errorf("invalid mode %q, must be one of: %s", mode, joinModes())
	}
	if !validGoal(goal) {
		return fmt.Errorf("invalid goal %q, must be one of: %s", goal, joinGoals())
	}

	if !domainPattern.MatchString(domain) {
		return fmt.Errorf("invalid domain %q, only alphanumeric characters, underscore, and hyphen allowed", domain)
	}
	if len(domain) > maxDomainLen {
		return fmt.Errorf("domain name too long: %d characters (max %d)", len(domain), maxDomainLen)
	}

	return nil
}

// Configuration is a convenience wrapper over Parameters.
func Configuration(inputFile string, cfg model.Configuration) error {
	return Parameters(inputFile, cfg.Mode, cfg.Goal, cfg.Domain)
}

func validMode(m model.Mode) bool {
	for _, v := range model.Modes() {
		if m == v {
			return true
		}
	}
	return false
}

func validGoal(g model.Goal) bool {
	for _, v := range model.Goals() {
		if g == v {
			return true
		}
	}
	return false
}

func joinModes() string {
	parts := make([]string, 0, len(model.Modes()))
	for _, m := range model.Modes() {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ", ")
}

func joinGoals() string {
	parts := make([]string, 0, len(model.Goals()))
	for _, g := range model.Goals() {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, ", ")
}
