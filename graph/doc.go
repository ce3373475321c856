// Package graph provides a small generic undirected weighted graph over
// string-labeled vertices, tuned for the transportation pipeline: the
// bipartite supply/demand graph of a shipment plan and its repair into a
// spanning tree.
//
// What it offers:
//
//   - Mutation with enforced invariants: unique labels, no self-loops, no
//     duplicate edges. Edge identity is the unordered pair, so A–B and B–A
//     are the same edge (EdgeKey, O(1) lookups).
//   - Queries: IsConnected (empty graph ⇒ false), IsCyclic (parent-edge
//     exclusion), IsTree, FindCycle.
//   - KEdgeAugmentation: cheapest-first, cycle-rejecting edge addition with
//     seeded random tie-breaking, and SpanningTree which repeats it until
//     the forest is connected.
//
// Determinism: Vertices/Edges keep insertion order; the only randomness is
// the augmentation shuffle, driven by the per-graph seed (WithSeed,
// SetSeed, UpdateSeed).
//
// A Graph is owned by one caller at a time; it has no internal locking.
package graph
