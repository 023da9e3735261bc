package errors

import (
	"math"
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// Limits applied to user-supplied values before they reach the tree engine.
const (
	MaxDimension  = 1 << 15
	maxPathLength = 4096
)

// ValidateDimensions checks a display or output area.
// Both sides must be positive and no larger than MaxDimension.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %d), got %dx%d", MaxDimension, width, height)
	}
	return nil
}

// ValidateResizeStep checks the fraction used by the grow and shrink keys.
// The step must lie in (0, 1].
func ValidateResizeStep(step float64) error {
	if math.IsNaN(step) || step <= 0 || step > 1 {
		return New(ErrCodeInvalidInput, "resize step must be in (0, 1], got %v", step)
	}
	return nil
}

// ValidateIgnorePattern checks that a glob compiles under filepath.Match rules.
func ValidateIgnorePattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return New(ErrCodeInvalidInput, "ignore pattern cannot be empty")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "bad ignore pattern %q", pattern)
	}
	return nil
}

// ValidatePath validates a filesystem path supplied on the command line or
// in a config file.
//
// The rules are:
//   - No empty paths
//   - No null bytes or control characters
//   - Maximum length of 4096 bytes
//
// Existence is not checked here; the scanner reports missing paths with
// ErrCodeFileNotFound.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateFormat checks that format is one of supported (case-insensitive).
func ValidateFormat(format string, supported []string) error {
	if !slices.Contains(supported, strings.ToLower(format)) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(supported, ", "))
	}
	return nil
}
