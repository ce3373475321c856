// SPDX-License-Identifier: MIT

// Package transport - the end-to-end pipeline.
//
// Evaluate chains NorthWestCorner → Graph → SpanningTree → Potentials →
// MarginalCost and reports the result. It stops at one basic feasible
// solution: the most negative marginal cost is reported, never pivoted on.

package transport

import (
	"fmt"

	"github.com/katalvlaran/transportation/graph"
	"github.com/katalvlaran/transportation/matrix"
)

// Option configures Evaluate.
type Option func(*evalOptions)

type evalOptions struct {
	seed   int64
	seeded bool
	reseed bool
}

// WithSeed fixes the spanning-tree repair seed for a reproducible run.
func WithSeed(seed int64) Option {
	return func(o *evalOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithReseed refreshes the repair seed from the clock between rounds.
// It overrides the reproducibility of WithSeed after the first added edge.
func WithReseed() Option {
	return func(o *evalOptions) { o.reseed = true }
}

// Report is the outcome of Evaluate.
type Report[V matrix.Signed, T matrix.Number] struct {
	Plan      *matrix.Dense[T] // allocation after NorthWestCorner
	TotalCost T
	Tree      *graph.Graph[T] // plan graph repaired into a spanning tree
	Added     int             // edges added by the repair

	SupplyPotentials []V // u, with u_1 = 0
	DemandPotentials []V // v
	Marginal         *matrix.Dense[V]

	MinMarginal    V
	MinRow, MinCol int // first cell holding MinMarginal

	// Optimal is true when no marginal cost is negative.
	Optimal bool
}

// Evaluate runs the full pipeline on t. t's transport matrix is overwritten
// by NorthWestCorner.
//
// Errors: ErrNilTable, graph.ErrInsufficientEdges from the repair, and any
// Potentials error.
// Complexity: dominated by the O((n+m)³) potentials solve.
func Evaluate[V matrix.Signed, T matrix.Number](t *Table[T], opts ...Option) (*Report[V, T], error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, ErrNilTable)
	}
	o := evalOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	var gopts []graph.Option
	if o.seeded {
		gopts = append(gopts, graph.WithSeed(o.seed))
	}

	t.NorthWestCorner()
	g, err := t.Graph(gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	added, err := t.SpanningTree(g, o.reseed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, err)
	}
	u, v, err := Potentials[V](t, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opEvaluate, err)
	}

	marginal := reducedCosts(t, u, v)
	row, col, lo, _ := marginal.ArgMin()

	return &Report[V, T]{
		Plan:             t.Transport(),
		TotalCost:        t.TotalCost(),
		Tree:             g,
		Added:            added,
		SupplyPotentials: u,
		DemandPotentials: v,
		Marginal:         marginal,
		MinMarginal:      lo,
		MinRow:           row,
		MinCol:           col,
		Optimal:          lo >= 0,
	}, nil
}
