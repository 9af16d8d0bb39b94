package conmat

import "errors"

// Sentinel errors for matrix-store operations. Callers branch with errors.Is;
// messages are stable and prefixed for grep-ability.
var (
	// ErrShape indicates a dimension violation: a non-square matrix, a matrix
	// whose dimension differs from the first matrix in the set, an auxiliary
	// array whose length differs from N, a ragged text row, or a label slice
	// whose length differs from its data slice.
	ErrShape = errors.New("conmat: shape mismatch")

	// ErrIndex indicates an out-of-range row, column, matrix, or aux index.
	// Indices are never clamped; the violation is reported as-is.
	ErrIndex = errors.New("conmat: index out of range")

	// ErrNilMatrix indicates a nil *Dense was handed to the store.
	ErrNilMatrix = errors.New("conmat: nil matrix")
)
