// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/NewEmpty: O(r*c); At/Set: O(1); Clone/Data: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major matrix over the scalar type T.
//   - r,c hold dimensions (rows, cols); both are fixed at construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Zero-sized shapes (0×k, k×0) are legal; they are the "empty" matrices for
// which Min and Max report no value.
type Dense[T Number] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// New builds a matrix from a rectangular grid, copying the values.
// MAIN DESCRIPTION:
//   - Public constructor from nested slices; rows = len(data), cols = len(data[0]).
//
// Implementation:
//   - Stage 1: derive the shape from the first row (0 columns for no rows).
//   - Stage 2: verify every row has exactly cols entries.
//   - Stage 3: copy into a fresh flat buffer row by row.
//
// Behavior highlights:
//   - The caller's slices are never aliased; later edits to data do not leak in.
//
// Errors:
//   - ErrDimensionMismatch when a row length differs from the first row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](data [][]T) (*Dense[T], error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}

	m := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	var i int
	for i = 0; i < rows; i++ {
		if len(data[i]) != cols {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d columns, want %d: %w",
				i, len(data[i]), cols, ErrDimensionMismatch))
		}
		copy(m.data[i*cols:(i+1)*cols], data[i])
	}

	return m, nil
}

// NewEmpty creates a rows×cols matrix filled with the zero value of T.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewEmpty[T Number](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNewEmpty, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// offset computes the row-major offset or returns ErrIndexOutOfBounds.
func (m *Dense[T]) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Never panics on out-of-range; returns ErrIndexOutOfBounds wrapped with the
// coordinates.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.offset(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrIndexOutOfBounds)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrIndexOutOfBounds)
	}
	out := make([]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns the matrix as a freshly allocated grid (deep copy).
// Complexity: O(r*c).
func (m *Dense[T]) Data() [][]T {
	out := make([][]T, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns an independent deep copy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and identical cells.
// A nil receiver equals only a nil argument.
// Complexity: O(r*c).
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if m.data[idx] != o.data[idx] {
			return false
		}
	}

	return true
}

// Fill sets every cell to v.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for idx := range m.data {
		m.data[idx] = v
	}
}

// Apply replaces every element with f(i, j, v), visiting cells in row-major
// order.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as "[a, b, c]" lines for diagnostics.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Convert returns a copy of m with every cell converted to V.
// Conversions follow Go's numeric conversion rules (truncation toward zero
// for float → integer, wrap-around for out-of-range integers).
// Complexity: O(r*c).
func Convert[V Number, T Number](m *Dense[T]) *Dense[V] {
	out := &Dense[V]{r: m.r, c: m.c, data: make([]V, len(m.data))}
	for idx, v := range m.data {
		out.data[idx] = V(v)
	}

	return out
}
