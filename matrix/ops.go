// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction, scalar scaling,
// matrix multiplication and transpose over Dense. All functions perform
// strict fail-fast validation and return fresh matrices; operands are never
// mutated.

package matrix

import "fmt"

// validatePair rejects nil operands.
func validatePair[T Number](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return nil
}

// addSub computes out = a + b (sub=false) or out = a - b (sub=true).
// Inputs must have identical shapes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[T Number](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opTag, fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	if sub {
		for idx := range a.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range a.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B.
// For unsigned T the usual wrap-around applies; callers wanting negative
// results should Convert to a signed kind first.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < a.r; i++ {
		rowOffsetA = i * a.c
		rowOffsetR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T Number](m *Dense[T], x []T) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch))
	}

	y := make([]T, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			y[i] += m.data[base+j] * x[j]
		}
	}

	return y, nil
}

// Transpose returns a new cols×rows matrix with result[j][i] = m[i][j].
// The original matrix is never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j, baseSrc int
	for i = 0; i < m.r; i++ {
		baseSrc = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[baseSrc+j]
		}
	}

	return res
}
