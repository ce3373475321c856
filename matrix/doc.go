// Package matrix provides a generic dense matrix and the linear algebra the
// transportation pipeline relies on.
//
// The matrix package provides:
//
//   - Dense[T]: a row-major grid over any integer or floating-point scalar,
//     with bounds-checked At/Set that return ErrIndexOutOfBounds instead of
//     panicking.
//   - Algebra: Add, Sub, Scale, Mul, MatVec and Transpose, each returning a
//     fresh matrix and never mutating operands.
//   - Queries: Min, Max, IndexOf and ArgMin (row-major, first match wins).
//   - Solve[V, T]: Gaussian elimination with partial pivoting that assembles
//     the system in a target scalar V, so a uint32 cost matrix can be solved
//     in int64 or float64.
//
// Shapes are fixed at construction. Zero-sized shapes are legal and are the
// only matrices for which Min/Max report no value.
//
// See the examples in this package for usage patterns.
package matrix
