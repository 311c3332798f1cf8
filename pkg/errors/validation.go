package errors

import (
	"strings"
	"unicode"
)

// ValidateStateID validates a state identifier for safety and correctness.
// It rejects identifiers that could break downstream renderers or cache keys.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Semantic validation (duplicates, dangling transitions) is done by the
// machine itself.
func ValidateStateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidState, "state id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidState, "state id too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidState, "state id contains invalid control characters")
		}
	}

	return nil
}

// ValidateMachineFilename validates a machine definition filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateMachineFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidMachine, "machine filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidMachine, "machine filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidMachine, "machine filename cannot be a hidden file")
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// knownFormats lists the output formats the renderers understand.
var knownFormats = map[string]bool{
	"svg":  true,
	"png":  true,
	"dot":  true,
	"json": true,
	"pdf":  true,
}

// ValidateFormat validates an output format name.
func ValidateFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !knownFormats[format] {
		return New(ErrCodeInvalidFormat, "unknown format %q (want svg, png, dot or json)", format)
	}
	return nil
}

// knownModes lists the layout modes the engine understands.
var knownModes = map[string]bool{
	"fresh":   true,
	"layered": true,
}

// ValidateMode validates a layout mode name.
func ValidateMode(mode string) error {
	if mode == "" {
		return New(ErrCodeInvalidMode, "mode cannot be empty")
	}
	if !knownModes[mode] {
		return New(ErrCodeInvalidMode, "unknown layout mode %q (want fresh or layered)", mode)
	}
	return nil
}
