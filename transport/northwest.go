// SPDX-License-Identifier: MIT

package transport

// NorthWestCorner fills the transport matrix with the North-West-Corner
// initial basic feasible solution.
//
// Steps:
//  1. Start from an all-zero plan.
//  2. Copy supply and demand into working vectors (the Table's own are untouched).
//  3. With cursors i=0, j=0, while i<n && j<m: allocate min(s[i], d[j]) to
//     cell (i,j), subtract it from both, advance i when s[i] hits zero and
//     advance j when d[j] hits zero.
//  4. Write the plan over the transport matrix.
//
// Costs are ignored. Both cursors exhaust together on a balanced problem; a
// step that exhausts both at once is degenerate and leaves fewer than n+m-1
// nonzero cells, which SpanningTree later repairs.
//
// Deterministic: identical tables always produce identical plans.
// Complexity: O(n*m) for the reset, O(n+m) for the walk.
func (t *Table[T]) NorthWestCorner() {
	var zero T
	plan := make([]T, t.n*t.m)

	s := t.Supply()
	d := t.Demand()
	var i, j int
	var amount T
	for i < t.n && j < t.m {
		amount = min(s[i], d[j])
		plan[i*t.m+j] = amount
		s[i] -= amount
		d[j] -= amount
		if s[i] == zero {
			i++
		}
		if d[j] == zero {
			j++
		}
	}
	t.transport.Apply(func(i, j int, _ T) T { return plan[i*t.m+j] })
}
