// SPDX-License-Identifier: MIT

// Package lpref computes the exact optimum of a balanced transportation
// problem with gonum's simplex solver. It is a reference only: the value is
// reported next to a heuristic plan (and used as a test oracle) but never
// fed back into it.
//
// Formulation (equality form, x ≥ 0, row-major x_ij):
//
//	minimize   Σ c_ij x_ij
//	subject to Σ_j x_ij = s_i        for every supply row i
//	           Σ_i x_ij = d_j        for every demand column j except the last
//
// The last demand constraint is implied by balance and is dropped to keep
// the constraint matrix full row rank.
package lpref

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/transport"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Sentinel errors.
var (
	// ErrDimensionMismatch indicates ragged costs or vectors of the wrong length.
	ErrDimensionMismatch = errors.New("lpref: dimension mismatch")

	// ErrEmptyProblem indicates no supply rows or no demand columns.
	ErrEmptyProblem = errors.New("lpref: empty problem")

	// ErrUnbalancedProblem indicates Σsupply and Σdemand differ beyond tolerance.
	ErrUnbalancedProblem = errors.New("lpref: supply and demand are not balanced")
)

// balanceTol is the relative tolerance of the balance check.
const balanceTol = 1e-9

// Optimum returns the optimal cost and the optimal plan x (row-major,
// length n*m) of the balanced problem (costs, supply, demand).
//
// Errors:
//   - ErrEmptyProblem, ErrDimensionMismatch, ErrUnbalancedProblem.
//   - lp.ErrInfeasible and friends from the solver, wrapped.
//
// Complexity: simplex on an (n+m−1)×(n·m) system.
func Optimum(costs [][]float64, supply, demand []float64) (float64, []float64, error) {
	n, m := len(supply), len(demand)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyProblem
	}
	if len(costs) != n {
		return 0, nil, fmt.Errorf("lpref: %d cost rows for %d supplies: %w", len(costs), n, ErrDimensionMismatch)
	}
	s, d := floats.Sum(supply), floats.Sum(demand)
	if !scalar.EqualWithinAbsOrRel(s, d, balanceTol, balanceTol) {
		return 0, nil, fmt.Errorf("lpref: supply %v, demand %v: %w", s, d, ErrUnbalancedProblem)
	}

	vars := n * m
	rows := n + m - 1
	c := make([]float64, 0, vars)
	for i, row := range costs {
		if len(row) != m {
			return 0, nil, fmt.Errorf("lpref: cost row %d has %d entries, want %d: %w", i, len(row), m, ErrDimensionMismatch)
		}
		c = append(c, row...)
	}

	a := mat.NewDense(rows, vars, nil)
	b := make([]float64, rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			a.Set(i, i*m+j, 1)
		}
		b[i] = supply[i]
	}
	for j = 0; j < m-1; j++ {
		for i = 0; i < n; i++ {
			a.Set(n+j, i*m+j, 1)
		}
		b[n+j] = demand[j]
	}

	opt, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("lpref: simplex: %w", err)
	}

	return opt, x, nil
}

// OptimumOf converts a Table to float64 and solves it with Optimum.
func OptimumOf[T matrix.Number](t *transport.Table[T]) (float64, []float64, error) {
	if t == nil {
		return 0, nil, ErrEmptyProblem
	}
	costs := matrix.Convert[float64](t.Costs()).Data()

	return Optimum(costs, toFloat(t.Supply()), toFloat(t.Demand()))
}

func toFloat[T matrix.Number](xs []T) []float64 {
	out := make([]float64, len(xs))
	for k, x := range xs {
		out[k] = float64(x)
	}

	return out
}

// Gap returns the relative excess (plan − optimum) / |optimum|. A zero
// optimum yields 0 for a zero plan cost and +Inf otherwise.
func Gap(planCost, optimum float64) float64 {
	if optimum == 0 {
		if planCost == 0 {
			return 0
		}
		return math.Inf(1)
	}

	return (planCost - optimum) / math.Abs(optimum)
}
