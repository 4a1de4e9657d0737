package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputDir checks a user-supplied output directory.
//
// Unlike diagram names, output directories may be relative or absolute and
// may contain ".." (rendering into a sibling docs checkout is legitimate).
// Only values that can never name a directory are rejected:
//   - empty strings
//   - control characters and null bytes
//   - paths longer than 1024 characters
func ValidateOutputDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	if len(dir) > 1024 {
		return New(ErrCodeInvalidPath, "output directory too long (max 1024 characters)")
	}
	for _, r := range dir {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid control characters")
		}
	}
	return nil
}
