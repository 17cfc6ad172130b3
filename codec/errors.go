// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned for a format name or file extension
	// other than json, yaml or yml.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrShapeConflict indicates a document whose declared rows/cols
	// disagree with its data.
	ErrShapeConflict = errors.New("codec: declared shape does not match data")
)

// codecErrorf wraps err with the operation and format, keeping the cause for errors.Is.
func codecErrorf(op string, f Format, err error) error {
	return fmt.Errorf("codec: %s %s: %w", op, f, err)
}
