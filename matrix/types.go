// SPDX-License-Identifier: MIT

// Package matrix: element constraint and the read-only sequence contract shared by views.
package matrix

// Number is the element constraint of Matrix.
// Every member supports ==, +, -, * and has the additive identity as its zero value,
// which is what zero-filled construction relies on.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Sequence is a bounded, indexable run of elements.
// RowView, ColView, ConstRowView and ConstColView all satisfy it, which lets
// element-wise view arithmetic take any of them as the right-hand operand.
type Sequence[T Number] interface {
	// Len returns the number of elements in the sequence.
	Len() int

	// At returns the k-th element or ErrIndexOutOfRange.
	At(k int) (T, error)
}
