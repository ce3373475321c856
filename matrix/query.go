// SPDX-License-Identifier: MIT

package matrix

// IsSquare reports whether Rows() == Cols().
// Complexity: O(1).
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// IsEmpty reports whether the matrix has zero rows or zero columns.
// Complexity: O(1).
func (m *Dense[T]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// Min returns the smallest cell value; ok is false for an empty matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Min() (T, bool) {
	if m.IsEmpty() {
		var zero T
		return zero, false
	}
	lo := m.data[0]
	for _, v := range m.data[1:] {
		if v < lo {
			lo = v
		}
	}

	return lo, true
}

// Max returns the largest cell value; ok is false for an empty matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Max() (T, bool) {
	if m.IsEmpty() {
		var zero T
		return zero, false
	}
	hi := m.data[0]
	for _, v := range m.data[1:] {
		if v > hi {
			hi = v
		}
	}

	return hi, true
}

// IndexOf returns the first (row, col) in row-major scan order whose cell
// equals v. ok is false when no cell matches.
// Complexity: O(r*c).
func (m *Dense[T]) IndexOf(v T) (row, col int, ok bool) {
	for idx, x := range m.data {
		if x == v {
			return idx / m.c, idx % m.c, true
		}
	}

	return -1, -1, false
}

// ArgMin combines Min and IndexOf: the smallest value and the first cell
// holding it.
// Complexity: O(r*c).
func (m *Dense[T]) ArgMin() (row, col int, value T, ok bool) {
	if m.IsEmpty() {
		return -1, -1, value, false
	}
	best := 0
	for idx := 1; idx < len(m.data); idx++ {
		if m.data[idx] < m.data[best] {
			best = idx
		}
	}

	return best / m.c, best % m.c, m.data[best], true
}

// Sum returns the sum of all cells.
// Complexity: O(r*c).
func (m *Dense[T]) Sum() T {
	var s T
	for _, v := range m.data {
		s += v
	}

	return s
}
