package transport_test

import (
	"testing"

	"github.com/katalvlaran/transportation/graph"
	"github.com/katalvlaran/transportation/transport"
	"github.com/stretchr/testify/require"
)

// TestLabels round-trips labels and rejects junk.
func TestLabels(t *testing.T) {
	require.Equal(t, "S1", transport.SupplyLabel(0))
	require.Equal(t, "D12", transport.DemandLabel(11))

	side, k, err := transport.ParseLabel("D12")
	require.NoError(t, err)
	require.Equal(t, transport.DemandSide, side)
	require.Equal(t, 11, k)

	for _, bad := range []string{"", "S", "X1", "S0", "S-1", "S+1", "S01", "Sx"} {
		_, _, err = transport.ParseLabel(bad)
		require.ErrorIs(t, err, transport.ErrInvalidLabel, bad)
	}
}

// TestGraphProjection: vertices S1..Sn, D1..Dm; edges weighted by allocation.
func TestGraphProjection(t *testing.T) {
	tbl := workedExample(t)
	tbl.NorthWestCorner()

	g, err := tbl.Graph(graph.WithSeed(seedDet))
	require.NoError(t, err)
	require.Equal(t, []string{"S1", "S2", "D1", "D2"}, g.Vertices())
	require.Equal(t, []graph.Edge[uint32]{
		graph.NewEdge("S1", "D1", uint32(5)),
		graph.NewEdge("S2", "D1", uint32(1)),
		graph.NewEdge("S2", "D2", uint32(4)),
	}, g.Edges())
	require.True(t, g.IsTree())
	require.Equal(t, seedDet, g.Seed())
}

// TestUnusedEdges: zero cells weighted by cost, not allocation.
func TestUnusedEdges(t *testing.T) {
	tbl := workedExample(t)
	require.Len(t, tbl.UnusedEdges(), 4, "before NWC every cell is unused")

	tbl.NorthWestCorner()
	require.Equal(t, []graph.Edge[uint32]{graph.NewEdge("S1", "D2", uint32(2))}, tbl.UnusedEdges())
}

// TestSpanningTreeRepair turns a degenerate plan graph into a tree.
func TestSpanningTreeRepair(t *testing.T) {
	tbl := mustTable(t, [][]int{{1, 9, 9}, {5, 1, 1}}, []int{3, 4}, []int{3, 2, 2})
	tbl.NorthWestCorner()
	g, err := tbl.Graph(graph.WithSeed(seedDet))
	require.NoError(t, err)

	added, err := tbl.SpanningTree(g, false)
	require.NoError(t, err)
	require.Equal(t, 1, added)
	require.True(t, g.IsTree())
	require.Equal(t, tbl.N()+tbl.M()-1, g.EdgeCount())
	// the cheapest unused edge joining the components is S2–D1 (cost 5)
	require.True(t, g.HasEdge("S2", "D1"))

	added, err = tbl.SpanningTree(g, false)
	require.NoError(t, err)
	require.Zero(t, added)
}
