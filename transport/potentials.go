// SPDX-License-Identifier: MIT

// Package transport - dual potentials and marginal costs.
//
// For a spanning tree over S1..Sn, D1..Dm the potentials satisfy
// u_i − v_j = cost[i][j] on every tree edge Si–Dj, normalized by u_1 = 0.
// The tree gives n+m−1 equations for n+m unknowns; the normalization row
// makes the system square and nonsingular.
//
// The system is assembled in the signed scalar V, independent of the table
// scalar T: coefficients are ±1 and intermediates may be negative. A tree
// incidence system is totally unimodular, so integer V solves it exactly.

package transport

import (
	"fmt"

	"github.com/katalvlaran/transportation/graph"
	"github.com/katalvlaran/transportation/matrix"
)

// treeEdge is a tree edge resolved to table coordinates.
type treeEdge struct{ i, j int }

// treeEdges checks that g is a spanning tree over exactly the table's
// vertices and resolves every edge to its (row, col) cell.
func (t *Table[T]) treeEdges(g *graph.Graph[T]) ([]treeEdge, error) {
	if g == nil || !g.IsTree() {
		return nil, ErrNotATree
	}
	if g.VertexCount() != t.n+t.m {
		return nil, fmt.Errorf("%d vertices, want %d: %w", g.VertexCount(), t.n+t.m, ErrNotATree)
	}
	for _, label := range g.Vertices() {
		side, k, err := ParseLabel(label)
		if err != nil {
			return nil, err
		}
		if (side == SupplySide && k >= t.n) || (side == DemandSide && k >= t.m) {
			return nil, fmt.Errorf("%q outside %dx%d: %w", label, t.n, t.m, ErrInvalidLabel)
		}
	}

	edges := g.Edges()
	out := make([]treeEdge, 0, len(edges))
	for _, e := range edges {
		sa, a, _ := ParseLabel(e.From)
		sb, b, _ := ParseLabel(e.To)
		switch {
		case sa == SupplySide && sb == DemandSide:
			out = append(out, treeEdge{i: a, j: b})
		case sa == DemandSide && sb == SupplySide:
			out = append(out, treeEdge{i: b, j: a})
		default:
			return nil, fmt.Errorf("edge %s is not supply-demand: %w", e, ErrNotATree)
		}
	}

	return out, nil
}

// Potentials solves for the dual potentials u (length n) and v (length m)
// of the spanning tree g.
//
// Implementation:
//   - Stage 1: require g to be a spanning tree over S1..Sn, D1..Dm.
//   - Stage 2: one row per tree edge Si–Dj: coefficient +1 at u_i, −1 at v_j,
//     right-hand side cost[i][j] converted to V.
//   - Stage 3: append the row u_1 = 0.
//   - Stage 4: matrix.Solve in V and split the solution.
//
// Errors:
//   - ErrNilTable, ErrNotATree, ErrInvalidLabel, matrix.ErrSingular (not
//     reachable for a valid tree).
//
// Complexity:
//   - Time O((n+m)³), Space O((n+m)²).
func Potentials[V matrix.Signed, T matrix.Number](t *Table[T], g *graph.Graph[T]) (u, v []V, err error) {
	if t == nil {
		return nil, nil, fmt.Errorf("%s: %w", opPotential, ErrNilTable)
	}
	tree, err := t.treeEdges(g)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opPotential, err)
	}

	size := t.n + t.m
	rows := make([][]V, size)
	b := make([]V, size)
	for row, e := range tree {
		rows[row] = make([]V, size)
		rows[row][e.i] = 1
		rows[row][t.n+e.j] = -1
		b[row] = V(t.cost(e.i, e.j))
	}
	rows[size-1] = make([]V, size)
	rows[size-1][0] = 1 // u_1 = 0; b[size-1] is already zero

	a, err := matrix.New(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opPotential, err)
	}
	x, err := matrix.Solve[V, V](a, b)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opPotential, err)
	}

	return x[:t.n], x[t.n:], nil
}

// MarginalCost returns the n×m reduced-cost matrix cost[i][j] − (u_i − v_j)
// for the potentials of tree g. Tree cells are zero; a negative cell is a
// potentially improving reallocation.
//
// Errors: as Potentials.
// Complexity: O((n+m)³ + n*m).
func MarginalCost[V matrix.Signed, T matrix.Number](t *Table[T], g *graph.Graph[T]) (*matrix.Dense[V], error) {
	u, v, err := Potentials[V](t, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMarginal, err)
	}

	return reducedCosts(t, u, v), nil
}

// reducedCosts fills cost[i][j] − (u_i − v_j) for every cell.
func reducedCosts[V matrix.Signed, T matrix.Number](t *Table[T], u, v []V) *matrix.Dense[V] {
	out := matrix.Convert[V](t.costs)
	out.Apply(func(i, j int, c V) V { return c - (u[i] - v[j]) })

	return out
}
