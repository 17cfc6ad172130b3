// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context via %w); tests and callers match them with errors.Is.
// No public operation panics on user-triggered error conditions. The only
// exception is unchecked cursor arithmetic, documented on Cursor.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Call sites wrap with "<Op>: %w" or "Matrix.<Method>(i,j): %w".

var (
	// ErrShapeMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul where a.Cols() != b.Rows(), or element-wise view
	// arithmetic over sequences of different lengths.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfRange indicates an element, row, column or view index
	// outside the current bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidLiteral indicates a literal initializer whose inner rows have
	// unequal lengths, or a flat literal whose length is not rows*cols.
	ErrInvalidLiteral = errors.New("matrix: invalid literal")

	// ErrBadShape indicates a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Matrix operand was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Method tags used by accessor error wrappers.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRef    = "Ref"
	ctxRow    = "Row"
	ctxCol    = "Col"
	ctxNew    = "New"
	ctxFromRS = "FromRows"
	ctxFromSL = "FromSlice"
)

// denseErrorf attaches the accessor name and coordinates to a sentinel.
// Format: "Matrix.<method>(row,col): <sentinel>". The sentinel survives for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// indexErrorf is the single-index counterpart of denseErrorf (rows, columns, view slots).
func indexErrorf(owner, method string, k int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", owner, method, k, err)
}

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Only call it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
