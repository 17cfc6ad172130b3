// SPDX-License-Identifier: MIT

// Package matrix provides a generic, dense, row-major two-dimensional container.
//
// The matrix package provides:
//
//   - Matrix[T]: an owning r×c buffer laid out in row-major order
//     (element (i,j) lives at offset i*cols + j), with bounds-checked access.
//   - Cursor[T] / ConstCursor[T]: random-access positions into that buffer.
//     Linear and row cursors step by 1; column cursors step by the row length.
//     Distance, ordering and offsets are all measured in logical positions.
//   - RowView / ColView (and their Const twins): non-owning aliases onto one row
//     or column that support iteration and in-place arithmetic.
//   - Add/Sub/Mul/Scale kernels that allocate a fresh result, and their
//     *InPlace counterparts that mutate the receiver.
//
// Ownership:
//
//	A Matrix exclusively owns its buffer. Cursors and views are plain references
//	into it and stay valid only while that buffer lives. CopyFrom and MulInPlace
//	replace the buffer and therefore invalidate every outstanding cursor and view.
//	This is a caller obligation; nothing checks it at runtime.
//
// Errors:
//
//	Construction, element access and view acquisition fail fast with sentinel
//	errors (ErrIndexOutOfRange, ErrShapeMismatch, ErrInvalidLiteral, ErrBadShape).
//	Cursor arithmetic is unchecked: stepping outside [begin, end] or dereferencing
//	an end cursor is the caller's responsibility.
//
// Concurrency:
//
//	No internal synchronization. Callers serialize mutation against iteration.
package matrix
