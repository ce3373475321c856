package graph_test

import (
	"testing"

	"github.com/katalvlaran/transportation/graph"
	"github.com/stretchr/testify/require"
)

// seedDet is the fixed augmentation seed used across deterministic tests.
const seedDet int64 = 42

// newGraph returns a seeded graph holding the given vertices and no edges.
func newGraph(t *testing.T, labels ...string) *graph.Graph[int] {
	t.Helper()
	g := graph.New[int](graph.WithSeed(seedDet))
	require.NoError(t, g.AddVertices(labels...))

	return g
}
