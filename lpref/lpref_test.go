package lpref_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/transportation/lpref"
	"github.com/stretchr/testify/require"
)

// TestOptimumSmall: the 2×2 instance whose NWC plan costs 34 has optimum 18.
func TestOptimumSmall(t *testing.T) {
	opt, x, err := lpref.Optimum([][]float64{{4, 1}, {2, 3}}, []float64{5, 5}, []float64{6, 4})
	require.NoError(t, err)
	require.InDelta(t, 18, opt, 1e-9)
	require.Len(t, x, 4)
	require.InDeltaSlice(t, []float64{1, 4, 5, 0}, x, 1e-9)
}

// TestOptimumFeasiblePlan: the returned plan meets every supply and demand.
func TestOptimumFeasiblePlan(t *testing.T) {
	costs := [][]float64{{8, 6, 10, 9}, {9, 12, 13, 7}, {14, 9, 16, 5}}
	supply := []float64{35, 50, 40}
	demand := []float64{45, 20, 30, 30}
	opt, x, err := lpref.Optimum(costs, supply, demand)
	require.NoError(t, err)
	require.InDelta(t, 1020, opt, 1e-6)

	for i := range supply {
		var s float64
		for j := range demand {
			require.GreaterOrEqual(t, x[i*4+j], -1e-9)
			s += x[i*4+j]
		}
		require.InDelta(t, supply[i], s, 1e-9)
	}
	for j := range demand {
		var d float64
		for i := range supply {
			d += x[i*4+j]
		}
		require.InDelta(t, demand[j], d, 1e-9)
	}
}

// TestOptimumSingleCell is the exactly determined 1×1 case.
func TestOptimumSingleCell(t *testing.T) {
	opt, x, err := lpref.Optimum([][]float64{{3}}, []float64{7}, []float64{7})
	require.NoError(t, err)
	require.InDelta(t, 21, opt, 1e-9)
	require.InDeltaSlice(t, []float64{7}, x, 1e-9)
}

// TestOptimumValidation covers the input checks.
func TestOptimumValidation(t *testing.T) {
	_, _, err := lpref.Optimum(nil, nil, []float64{1})
	require.ErrorIs(t, err, lpref.ErrEmptyProblem)
	_, _, err = lpref.Optimum([][]float64{{1, 2}}, []float64{1, 1}, []float64{1, 1})
	require.ErrorIs(t, err, lpref.ErrDimensionMismatch)
	_, _, err = lpref.Optimum([][]float64{{1}, {2, 3}}, []float64{1, 1}, []float64{1, 1})
	require.ErrorIs(t, err, lpref.ErrDimensionMismatch)
	_, _, err = lpref.Optimum([][]float64{{1, 2}}, []float64{3}, []float64{1, 1})
	require.ErrorIs(t, err, lpref.ErrUnbalancedProblem)
}

// TestGap covers the zero-optimum convention.
func TestGap(t *testing.T) {
	require.InDelta(t, 0.5, lpref.Gap(30, 20), 1e-12)
	require.Zero(t, lpref.Gap(0, 0))
	require.True(t, math.IsInf(lpref.Gap(1, 0), 1))
}
