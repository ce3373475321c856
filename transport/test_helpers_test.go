package transport_test

import (
	"testing"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

// seedDet fixes the spanning-tree repair seed in deterministic tests.
const seedDet int64 = 7

// mustTable builds a Table with an all-zero transport matrix.
func mustTable[T matrix.Number](t *testing.T, costs [][]T, supply, demand []T) *transport.Table[T] {
	t.Helper()
	c, err := matrix.New(costs)
	require.NoError(t, err)
	x, err := matrix.NewEmpty[T](c.Rows(), c.Cols())
	require.NoError(t, err)
	tbl, err := transport.New(c, x, supply, demand)
	require.NoError(t, err)

	return tbl
}

// workedExample is the 2×2 instance whose NWC plan is [[5,0],[1,4]].
func workedExample(t *testing.T) *transport.Table[uint32] {
	t.Helper()
	return mustTable(t, [][]uint32{{1, 2}, {3, 4}}, []uint32{5, 5}, []uint32{6, 4})
}

// rowSums / colSums of a plan, for feasibility checks.
func rowSums[T matrix.Number](m *matrix.Dense[T]) []T {
	out := make([]T, m.Rows())
	m.Do(func(i, _ int, v T) bool { out[i] += v; return true })
	return out
}

func colSums[T matrix.Number](m *matrix.Dense[T]) []T {
	out := make([]T, m.Cols())
	m.Do(func(_, j int, v T) bool { out[j] += v; return true })
	return out
}
