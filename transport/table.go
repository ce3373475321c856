// SPDX-License-Identifier: MIT

// Package transport - the transportation table.
//
// Table owns an n×m cost matrix, an n×m transport (allocation) matrix and the
// supply/demand vectors. After every constructor the dimensions agree and
// Σsupply == Σdemand. Accessors return copies; only NorthWestCorner mutates
// the transport matrix.

package transport

import (
	"fmt"

	"github.com/katalvlaran/transportation/matrix"
)

// Operation tags for error wrapping.
const (
	opNew       = "transport.New"
	opNewEmpty  = "transport.NewEmpty"
	opPotential = "transport.Potentials"
	opMarginal  = "transport.MarginalCost"
	opEvaluate  = "transport.Evaluate"
	opParse     = "transport.Parse"
	opLoad      = "transport.LoadFile"
)

// Table is a balanced transportation problem together with its current plan.
type Table[T matrix.Number] struct {
	costs     *matrix.Dense[T] // n×m unit costs
	transport *matrix.Dense[T] // n×m allocation, zero until NorthWestCorner
	supply    []T              // length n
	demand    []T              // length m
	n, m      int
}

// New validates and assembles a Table. Inputs are copied; later edits by
// the caller do not reach the Table.
//
// Implementation:
//   - Stage 1: reject nil matrices and empty vectors.
//   - Stage 2: check costs and transport are len(supply)×len(demand).
//   - Stage 3: reject negative, NaN and infinite entries in any input.
//   - Stage 4: check Σsupply == Σdemand, summed in a type wider than T.
//
// Errors:
//   - ErrDimensionMismatch, ErrEmptyProblem, ErrNegativeQuantity, ErrNonFinite,
//     ErrUnbalancedProblem (also when a float total overflows float64).
//
// Complexity:
//   - Time O(n*m), Space O(n*m).
func New[T matrix.Number](costs, transport *matrix.Dense[T], supply, demand []T) (*Table[T], error) {
	if costs == nil || transport == nil {
		return nil, fmt.Errorf("%s: nil matrix: %w", opNew, ErrDimensionMismatch)
	}
	n, m := len(supply), len(demand)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("%s: %d supplies, %d demands: %w", opNew, n, m, ErrEmptyProblem)
	}
	if r, c := costs.Shape(); r != n || c != m {
		return nil, fmt.Errorf("%s: costs %dx%d, want %dx%d: %w", opNew, r, c, n, m, ErrDimensionMismatch)
	}
	if r, c := transport.Shape(); r != n || c != m {
		return nil, fmt.Errorf("%s: transport %dx%d, want %dx%d: %w", opNew, r, c, n, m, ErrDimensionMismatch)
	}
	if err := checkQuantities(costs, transport, supply, demand); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if err := checkBalance(supply, demand); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return &Table[T]{
		costs:     costs.Clone(),
		transport: transport.Clone(),
		supply:    append([]T(nil), supply...),
		demand:    append([]T(nil), demand...),
		n:         n,
		m:         m,
	}, nil
}

// NewEmpty returns an n×m problem with zero costs, zero supply and zero
// demand (trivially balanced).
//
// Errors: ErrEmptyProblem when n < 1 or m < 1.
func NewEmpty[T matrix.Number](n, m int) (*Table[T], error) {
	if n < 1 || m < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", opNewEmpty, n, m, ErrEmptyProblem)
	}
	costs, err := matrix.NewEmpty[T](n, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewEmpty, err)
	}

	return &Table[T]{
		costs:     costs,
		transport: costs.Clone(),
		supply:    make([]T, n),
		demand:    make([]T, m),
		n:         n,
		m:         m,
	}, nil
}

// N returns the number of supply rows.
func (t *Table[T]) N() int { return t.n }

// M returns the number of demand columns.
func (t *Table[T]) M() int { return t.m }

// Costs returns a copy of the cost matrix.
func (t *Table[T]) Costs() *matrix.Dense[T] { return t.costs.Clone() }

// Transport returns a copy of the current allocation.
func (t *Table[T]) Transport() *matrix.Dense[T] { return t.transport.Clone() }

// Supply returns a copy of the supply vector.
func (t *Table[T]) Supply() []T { return append([]T(nil), t.supply...) }

// Demand returns a copy of the demand vector.
func (t *Table[T]) Demand() []T { return append([]T(nil), t.demand...) }

// cost and alloc read cells whose coordinates are valid by construction.
func (t *Table[T]) cost(i, j int) T {
	v, _ := t.costs.At(i, j)
	return v
}

func (t *Table[T]) alloc(i, j int) T {
	v, _ := t.transport.At(i, j)
	return v
}

// TotalCost returns Σ cost[i][j]·transport[i][j].
// Complexity: O(n*m).
func (t *Table[T]) TotalCost() T {
	var total T
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.m; j++ {
			total += t.cost(i, j) * t.alloc(i, j)
		}
	}

	return total
}

// checkQuantity rejects a negative or non-finite value; NaN compares false
// against zero and is caught by isFinite.
func checkQuantity[T matrix.Number](v T) error {
	var zero T
	if !isFinite(v) {
		return ErrNonFinite
	}
	if v < zero {
		return ErrNegativeQuantity
	}

	return nil
}

func checkQuantities[T matrix.Number](costs, transport *matrix.Dense[T], supply, demand []T) error {
	for i, s := range supply {
		if err := checkQuantity(s); err != nil {
			return fmt.Errorf("supply[%d] = %v: %w", i, s, err)
		}
	}
	for j, d := range demand {
		if err := checkQuantity(d); err != nil {
			return fmt.Errorf("demand[%d] = %v: %w", j, d, err)
		}
	}
	var err error
	check := func(name string) func(i, j int, v T) bool {
		return func(i, j int, v T) bool {
			if cerr := checkQuantity(v); cerr != nil {
				err = fmt.Errorf("%s[%d][%d] = %v: %w", name, i, j, v, cerr)
				return false
			}
			return true
		}
	}
	costs.Do(check("cost"))
	if err != nil {
		return err
	}
	transport.Do(check("transport"))

	return err
}

// checkBalance compares Σsupply and Σdemand exactly. Inputs have passed
// checkQuantities.
func checkBalance[T matrix.Number](supply, demand []T) error {
	s, okS := sumOf(supply)
	d, okD := sumOf(demand)
	if !okS || !okD {
		return fmt.Errorf("total overflows float64: %w", ErrUnbalancedProblem)
	}
	if s != d {
		return fmt.Errorf("supply %s, demand %s: %w", s, d, ErrUnbalancedProblem)
	}

	return nil
}
