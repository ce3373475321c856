package generator_test

import (
	"testing"

	"github.com/katalvlaran/transportation/generator"
	"github.com/stretchr/testify/require"
)

// TestGenerateBalancedAndInRange checks shape, balance and cost bounds.
func TestGenerateBalancedAndInRange(t *testing.T) {
	tbl, err := generator.Generate[uint32](4, 6, generator.WithSeed(5))
	require.NoError(t, err)
	require.Equal(t, 4, tbl.N())
	require.Equal(t, 6, tbl.M())

	var s, d uint32
	for _, x := range tbl.Supply() {
		s += x
		require.GreaterOrEqual(t, x, uint32(6*generator.DefaultLo))
	}
	for _, x := range tbl.Demand() {
		d += x
	}
	require.Equal(t, s, d)

	lo, ok := tbl.Costs().Min()
	require.True(t, ok)
	hi, _ := tbl.Costs().Max()
	require.GreaterOrEqual(t, lo, uint32(generator.DefaultLo))
	require.Less(t, hi, uint32(generator.DefaultHi))
}

// TestGenerateDeterministic: same seed ⇒ same instance; another seed differs.
func TestGenerateDeterministic(t *testing.T) {
	a, err := generator.Generate[int](5, 5, generator.WithSeed(9))
	require.NoError(t, err)
	b, err := generator.Generate[int](5, 5, generator.WithSeed(9))
	require.NoError(t, err)
	c, err := generator.Generate[int](5, 5, generator.WithSeed(10))
	require.NoError(t, err)

	require.True(t, a.Costs().Equal(b.Costs()))
	require.Equal(t, a.Supply(), b.Supply())
	require.False(t, a.Costs().Equal(c.Costs()))

	// seed 0 is the fixed default, not the clock
	z1, _ := generator.Generate[int](3, 3)
	z2, _ := generator.Generate[int](3, 3, generator.WithSeed(0))
	require.True(t, z1.Costs().Equal(z2.Costs()))
}

// TestGenerateRanges honours custom ranges and rejects bad ones.
func TestGenerateRanges(t *testing.T) {
	tbl, err := generator.Generate[float64](3, 3,
		generator.WithSeed(2),
		generator.WithCostRange(7, 8),
		generator.WithQuantityRange(2, 3))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{7, 7, 7}, {7, 7, 7}, {7, 7, 7}}, tbl.Costs().Data())
	require.Equal(t, []float64{6, 6, 6}, tbl.Supply())

	_, err = generator.Generate[int](0, 3)
	require.ErrorIs(t, err, generator.ErrInvalidSize)
	_, err = generator.Generate[int](2, 2, generator.WithCostRange(5, 5))
	require.ErrorIs(t, err, generator.ErrInvalidRange)
	_, err = generator.Generate[int](2, 2, generator.WithQuantityRange(-1, 3))
	require.ErrorIs(t, err, generator.ErrInvalidRange)
}

// TestBatch: instance k equals a standalone Generate with its derived seed.
func TestBatch(t *testing.T) {
	batch, err := generator.Batch[uint32](4, 3, 2, generator.WithSeed(77))
	require.NoError(t, err)
	require.Len(t, batch, 4)

	third, err := generator.Generate[uint32](3, 2, generator.WithSeed(generator.InstanceSeed(77, 2)))
	require.NoError(t, err)
	require.True(t, batch[2].Costs().Equal(third.Costs()))
	require.False(t, batch[0].Costs().Equal(batch[1].Costs()))

	_, err = generator.Batch[uint32](-1, 3, 2)
	require.ErrorIs(t, err, generator.ErrInvalidSize)
}
