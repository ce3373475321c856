// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag) and tests match them via errors.Is. No operation panics on
// user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Context is
// attached with matrixErrorf / denseErrorf at the nearest detection site;
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the shape.
	// At/Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub
	// on different shapes, Mul with a.Cols != b.Rows, ragged input rows or a
	// right-hand side whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Solve when no nonzero pivot exists for a column.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
