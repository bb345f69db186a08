// Package model holds the small, dependency-free value types shared by every
// other package: the validated library name and the on-chain record shapes.
package model

import (
	"fmt"
)

// MaxLibraryNameLength is the longest name the registry contract will accept.
const MaxLibraryNameLength = 214

// LibraryName is a validated registry identifier: lowercase alphanumerics
// with internal '-', '_', '.' separators, no leading/trailing separator,
// and at most MaxLibraryNameLength characters.
type LibraryName string

// ParseLibraryName validates raw and returns it as a LibraryName, or an
// error describing the first rule it violates.
func ParseLibraryName(raw string) (LibraryName, error) {
	if raw == "" {
		return "", fmt.Errorf("library name must not be empty")
	}
	if len(raw) > MaxLibraryNameLength {
		return "", fmt.Errorf("library name exceeds %d characters", MaxLibraryNameLength)
	}
	if raw[0] == '-' || raw[0] == '_' || raw[0] == '.' {
		return "", fmt.Errorf("library name %q must not start with a separator", raw)
	}
	last := raw[len(raw)-1]
	if last == '-' || last == '_' || last == '.' {
		return "", fmt.Errorf("library name %q must not end with a separator", raw)
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return "", fmt.Errorf("library name %q contains invalid character %q", raw, r)
		}
	}
	return LibraryName(raw), nil
}

func (n LibraryName) String() string { return string(n) }
