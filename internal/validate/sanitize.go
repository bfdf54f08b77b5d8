/*
PURPOSE:
  Derives a safe on-disk filename stem from an arbitrary input name.
  Defeats path traversal ("../", "/"), hidden-file creation (leading
  dots), and shell-significant characters.

REQUIREMENTS:
  User-specified:
  - Output contains only [A-Za-z0-9_.-], is non-empty, at most 50
    characters, and never starts with a dot.

  Implementation-discovered:
  - Must be idempotent: sanitizing a sanitized name is a no-op.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (output path construction)

ERROR HANDLING:
  - None. Pure function, total over all inputs.

IMPLEMENTATION RULES:
  - Replace, don't reject: every disallowed rune becomes '_'.
  - Strip leading dots after replacement, then apply the placeholder
    and the length cap.

USAGE:
  safe := validate.SanitizeFilename(filepath.Base(input))

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - None.
*/

package validate

import (
	"strings"
)

const (
	maxSafeNameLen  = 50
	placeholderName = "unnamed"
)

// SanitizeFilename maps an arbitrary name to a filesystem-safe stem.
func SanitizeFilename(raw string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, raw)

	// Leading dots would create hidden files.
	safe = strings.TrimLeft(safe, ".")

	if safe == "" {
		safe = placeholderName
	}
	if len(safe) > maxSafeNameLen {
		safe = safe[:maxSafeNameLen]
	}
	return safe
}
