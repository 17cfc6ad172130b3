// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// String returns the canonical lower-case name.
func (f Format) String() string { return string(f) }

// ParseFormat maps a user-supplied name (case-insensitive, "yml" accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}

// FormatFromPath infers the Format from a file extension.
// The path "-" (standard input/output) is JSON.
func FormatFromPath(path string) (Format, error) {
	if path == "-" {
		return JSON, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%q has no extension: %w", path, ErrUnknownFormat)
	}

	return ParseFormat(ext)
}
