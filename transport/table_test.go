package transport_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

// TestNewValidation covers every constructor failure.
func TestNewValidation(t *testing.T) {
	c, _ := matrix.New([][]int{{1, 2}, {3, 4}})
	x, _ := matrix.NewEmpty[int](2, 2)
	x3, _ := matrix.NewEmpty[int](3, 2)
	neg, _ := matrix.New([][]int{{1, -2}, {3, 4}})

	cases := []struct {
		name           string
		costs, plan    *matrix.Dense[int]
		supply, demand []int
		want           error
	}{
		{"nil costs", nil, x, []int{1, 1}, []int{1, 1}, transport.ErrDimensionMismatch},
		{"empty supply", c, x, nil, []int{1, 1}, transport.ErrEmptyProblem},
		{"supply length", c, x, []int{1, 1, 1}, []int{1, 1}, transport.ErrDimensionMismatch},
		{"transport shape", c, x3, []int{1, 1}, []int{1, 1}, transport.ErrDimensionMismatch},
		{"negative cost", neg, x, []int{1, 1}, []int{1, 1}, transport.ErrNegativeQuantity},
		{"negative demand", c, x, []int{1, 1}, []int{3, -1}, transport.ErrNegativeQuantity},
		{"unbalanced", c, x, []int{5, 5}, []int{6, 5}, transport.ErrUnbalancedProblem},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transport.New(tc.costs, tc.plan, tc.supply, tc.demand)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestBalanceInvariant: any perturbation of one side fails.
func TestBalanceInvariant(t *testing.T) {
	c, _ := matrix.New([][]uint32{{1, 2, 3}})
	x, _ := matrix.NewEmpty[uint32](1, 3)
	var d uint32
	for d = 0; d < 20; d++ {
		if d == 9 {
			continue
		}
		_, err := transport.New(c, x, []uint32{9}, []uint32{d, 0, 0})
		require.ErrorIs(t, err, transport.ErrUnbalancedProblem, "demand %d", d)
	}
	_, err := transport.New(c, x, []uint32{9}, []uint32{9, 0, 0})
	require.NoError(t, err)
}

// TestAccessorsAreCopies ensures callers cannot mutate the table.
func TestAccessorsAreCopies(t *testing.T) {
	tbl := workedExample(t)
	require.Equal(t, 2, tbl.N())
	require.Equal(t, 2, tbl.M())

	s := tbl.Supply()
	s[0] = 99
	require.Equal(t, []uint32{5, 5}, tbl.Supply())

	c := tbl.Costs()
	require.NoError(t, c.Set(0, 0, 42))
	v, _ := tbl.Costs().At(0, 0)
	require.Equal(t, uint32(1), v)
}

// TestNewEmpty returns a zero problem and rejects empty shapes.
func TestNewEmpty(t *testing.T) {
	tbl, err := transport.NewEmpty[int64](3, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 0, 0}, tbl.Supply())
	require.Zero(t, tbl.TotalCost())

	_, err = transport.NewEmpty[int64](0, 2)
	require.ErrorIs(t, err, transport.ErrEmptyProblem)
}

// TestNewRejectsNonFinite: NaN and ±Inf never reach NorthWestCorner.
func TestNewRejectsNonFinite(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	c, _ := matrix.New([][]float64{{1}})
	cNaN, _ := matrix.New([][]float64{{nan}})
	x, _ := matrix.NewEmpty[float64](1, 1)
	xInf, _ := matrix.New([][]float64{{inf}})

	cases := []struct {
		name           string
		costs, plan    *matrix.Dense[float64]
		supply, demand []float64
	}{
		{"inf supply and demand", c, x, []float64{inf}, []float64{inf}},
		{"negative inf", c, x, []float64{math.Inf(-1)}, []float64{math.Inf(-1)}},
		{"nan supply", c, x, []float64{nan}, []float64{1}},
		{"nan cost", cNaN, x, []float64{1}, []float64{1}},
		{"inf allocation", c, xInf, []float64{1}, []float64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transport.New(tc.costs, tc.plan, tc.supply, tc.demand)
			require.ErrorIs(t, err, transport.ErrNonFinite)
		})
	}
}

// TestBalanceDoesNotWrap: totals are compared without overflow in T.
func TestBalanceDoesNotWrap(t *testing.T) {
	c8, _ := matrix.New([][]uint8{{1}, {1}})
	x8, _ := matrix.NewEmpty[uint8](2, 1)
	_, err := transport.New(c8, x8, []uint8{200, 100}, []uint8{44})
	require.ErrorIs(t, err, transport.ErrUnbalancedProblem, "200+100 wraps to 44 in uint8")

	ci8, _ := matrix.New([][]int8{{1}, {1}, {1}})
	xi8, _ := matrix.NewEmpty[int8](3, 1)
	_, err = transport.New(ci8, xi8, []int8{100, 100, 56}, []int8{0})
	require.ErrorIs(t, err, transport.ErrUnbalancedProblem, "256 wraps to 0 in int8")

	c64, _ := matrix.New([][]uint64{{1, 1}, {1, 1}})
	x64, _ := matrix.NewEmpty[uint64](2, 2)
	_, err = transport.New(c64, x64, []uint64{math.MaxUint64, 1}, []uint64{0, 0})
	require.ErrorIs(t, err, transport.ErrUnbalancedProblem)
	require.ErrorContains(t, err, "18446744073709551616")
	_, err = transport.New(c64, x64, []uint64{math.MaxUint64, 1}, []uint64{1, math.MaxUint64})
	require.NoError(t, err, "totals above the uint64 range still balance")

	cf, _ := matrix.New([][]float64{{1, 1}})
	xf, _ := matrix.NewEmpty[float64](1, 2)
	_, err = transport.New(cf, xf, []float64{math.MaxFloat64 / 2}, []float64{math.MaxFloat64, math.MaxFloat64})
	require.ErrorIs(t, err, transport.ErrUnbalancedProblem)
}
