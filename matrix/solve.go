// SPDX-License-Identifier: MIT

// Package matrix - dense linear-system solver.
//
// Purpose:
//   - Solve A·x = b for square A by Gaussian elimination with partial pivoting
//     followed by back-substitution.
//   - Assemble the system in a target scalar V distinct from the storage scalar
//     T, so integer cost matrices can be solved in a wider signed or floating kind.
//
// Numeric policy:
//   - Pivot = largest |value| in the current column among rows not yet
//     eliminated; ties keep the topmost row.
//   - A pivot equal to V's zero value means the system is singular (ErrSingular).
//   - Integer V performs truncating division. That is exact for unimodular
//     systems (e.g. spanning-tree incidence systems, whose pivots stay ±1) and
//     for any system whose eliminations divide evenly; otherwise use a float V.

package matrix

import "fmt"

// absV returns |x| for a signed scalar.
func absV[V Signed](x V) V {
	if x < 0 {
		return -x
	}

	return x
}

// Solve solves the square system a·x = b and returns x (length a.Cols()).
// MAIN DESCRIPTION:
//   - Gaussian elimination with partial pivoting by largest absolute value,
//     column by column, then back-substitution.
//
// Implementation:
//   - Stage 1: validate a non-nil, square, len(b) == rows.
//   - Stage 2: build the augmented n×(n+1) matrix [V(a) | b] in V.
//   - Stage 3: for each column j: pick the pivot row among j..n-1, swap it up,
//     fail on a zero pivot, eliminate every row below.
//   - Stage 4: back-substitute from the last row upward.
//
// Behavior highlights:
//   - Inputs are never mutated; the augmented matrix is a temporary.
//   - Fails instead of producing a partial solution.
//
// Inputs:
//   - a: square coefficient matrix in the storage scalar T.
//   - b: right-hand side already expressed in the target scalar V.
//
// Returns:
//   - []V: the solution vector.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != rows),
//     ErrSingular (zero pivot).
//
// Determinism:
//   - Fixed pivot rule and loop orders; identical inputs give identical output.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve[V Signed, T Number](a *Dense[T], b []V) ([]V, error) {
	if a == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if !a.IsSquare() {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%dx%d: %w", a.r, a.c, ErrNonSquare))
	}
	if len(b) != a.r {
		return nil, matrixErrorf(opSolve, fmt.Errorf("len(b)=%d, rows=%d: %w", len(b), a.r, ErrDimensionMismatch))
	}

	n := a.r
	w := n + 1 // augmented width
	aug := make([]V, n*w)
	var i, j, k, l int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			aug[i*w+j] = V(a.data[i*n+j])
		}
		aug[i*w+n] = b[i]
	}

	var (
		kmax          int
		best, cand    V
		pivot, factor V
	)
	for j = 0; j < n; j++ {
		// Partial pivoting over the not-yet-eliminated rows j..n-1.
		kmax = j
		best = absV(aug[j*w+j])
		for k = j + 1; k < n; k++ {
			cand = absV(aug[k*w+j])
			if cand > best {
				kmax = k
				best = cand
			}
		}
		if kmax != j {
			for l = 0; l < w; l++ {
				aug[j*w+l], aug[kmax*w+l] = aug[kmax*w+l], aug[j*w+l]
			}
		}

		pivot = aug[j*w+j]
		if pivot == 0 {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", j, ErrSingular))
		}
		for k = j + 1; k < n; k++ {
			if aug[k*w+j] == 0 {
				continue
			}
			factor = aug[k*w+j] / pivot
			for l = j; l < w; l++ {
				aug[k*w+l] -= aug[j*w+l] * factor
			}
		}
	}

	x := make([]V, n)
	for i = n - 1; i >= 0; i-- {
		x[i] = aug[i*w+n] / aug[i*w+i]
		for j = 0; j < i; j++ {
			aug[j*w+n] -= aug[j*w+i] * x[i]
		}
	}

	return x, nil
}
