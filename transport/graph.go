// SPDX-License-Identifier: MIT

// Package transport - projection of a plan onto the bipartite graph.
//
// Supply row i is vertex "S{i+1}", demand column j is vertex "D{j+1}".
// The plan graph has one edge per nonzero allocation weighted by the amount;
// the unused edges are the zero cells weighted by their unit cost and serve
// only as augmentation candidates.

package transport

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/transportation/graph"
)

// Side tells which partition a vertex label belongs to.
type Side uint8

const (
	// SupplySide marks an "S{i}" vertex.
	SupplySide Side = iota + 1
	// DemandSide marks a "D{j}" vertex.
	DemandSide
)

const (
	supplyPrefix = "S"
	demandPrefix = "D"
)

// SupplyLabel returns the vertex label of supply row i (0-based): "S{i+1}".
func SupplyLabel(i int) string { return supplyPrefix + strconv.Itoa(i+1) }

// DemandLabel returns the vertex label of demand column j (0-based): "D{j+1}".
func DemandLabel(j int) string { return demandPrefix + strconv.Itoa(j+1) }

// ParseLabel inverts SupplyLabel/DemandLabel, returning the side and the
// 0-based index. Returns ErrInvalidLabel for anything else.
func ParseLabel(label string) (Side, int, error) {
	if len(label) < 2 {
		return 0, -1, fmt.Errorf("%q: %w", label, ErrInvalidLabel)
	}
	var side Side
	switch label[:1] {
	case supplyPrefix:
		side = SupplySide
	case demandPrefix:
		side = DemandSide
	default:
		return 0, -1, fmt.Errorf("%q: %w", label, ErrInvalidLabel)
	}
	k, err := strconv.Atoi(label[1:])
	if err != nil || k < 1 || label[1] == '+' || label[1] == '0' {
		return 0, -1, fmt.Errorf("%q: %w", label, ErrInvalidLabel)
	}

	return side, k - 1, nil
}

// Graph builds the plan graph: vertices S1..Sn then D1..Dm, and an edge
// Si–Dj for every nonzero allocation (row-major), weighted by the amount.
// opts are forwarded to graph.New (e.g. graph.WithSeed for reproducible repair).
// Complexity: O(n*m).
func (t *Table[T]) Graph(opts ...graph.Option) (*graph.Graph[T], error) {
	g := graph.New[T](opts...)
	var i, j int
	for i = 0; i < t.n; i++ {
		if err := g.AddVertex(SupplyLabel(i)); err != nil {
			return nil, err
		}
	}
	for j = 0; j < t.m; j++ {
		if err := g.AddVertex(DemandLabel(j)); err != nil {
			return nil, err
		}
	}

	var zero, x T
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.m; j++ {
			if x = t.alloc(i, j); x == zero {
				continue
			}
			if err := g.AddEdge(SupplyLabel(i), DemandLabel(j), x); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// UnusedEdges returns one candidate edge Si–Dj per zero allocation in
// row-major order, weighted by cost[i][j].
// Complexity: O(n*m).
func (t *Table[T]) UnusedEdges() []graph.Edge[T] {
	var out []graph.Edge[T]
	var zero T
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.m; j++ {
			if t.alloc(i, j) == zero {
				out = append(out, graph.NewEdge(SupplyLabel(i), DemandLabel(j), t.cost(i, j)))
			}
		}
	}

	return out
}

// SpanningTree repairs the plan graph g into a spanning tree by adding
// unused edges one at a time (cheapest first, seeded tie-break) until g is
// connected. When reseed is true the graph seed is refreshed from the
// clock between rounds.
//
// Returns the number of edges added. A graph that is already a tree is
// left untouched. Errors come from graph.KEdgeAugmentation
// (ErrContainsCycle, ErrInsufficientEdges).
//
// Complexity: O(R · C·(V+E)) for R added edges and C candidates.
func (t *Table[T]) SpanningTree(g *graph.Graph[T], reseed bool) (int, error) {
	return g.SpanningTree(t.UnusedEdges(), reseed)
}
