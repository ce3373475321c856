// SPDX-License-Identifier: MIT

// Package graph - greedy spanning-tree repair.
//
// KEdgeAugmentation moves a forest toward a spanning tree by adding up to k
// candidate edges, cheapest first, rejecting any edge that would close a
// cycle. It is a best-effort heuristic: equal weights are tie-broken by a
// seeded shuffle, and no minimum-weight guarantee is made.
package graph

import (
	"fmt"
	"sort"
)

// KEdgeAugmentation adds k edges from candidates to a disconnected forest
// without creating a cycle.
//
// Steps:
//  1. Preconditions: connected ⇒ ErrAlreadyConnected; cyclic ⇒ ErrContainsCycle.
//  2. Copy candidates, shuffle them with a rand.Rand seeded from Seed().
//  3. Stable-sort the shuffled copy ascending by Weight.
//  4. For each candidate: skip if an equal edge exists; otherwise add it,
//     and if the graph became cyclic remove it again (rollback); else count it.
//  5. Stop after k successful additions.
//
// Returns ErrInsufficientEdges (wrapped with the shortfall) when the
// candidates run out first; edges added before that point stay in the graph.
// A candidate that names an unknown vertex or is a self-loop aborts with the
// AddEdge error. k <= 0 succeeds without changes once preconditions hold.
//
// The caller's candidates slice is never reordered.
//
// Complexity: O(C log C + C·(V+E)) for C candidates.
func (g *Graph[T]) KEdgeAugmentation(k int, candidates []Edge[T]) error {
	if g.IsConnected() {
		return ErrAlreadyConnected
	}
	if g.IsCyclic() {
		return ErrContainsCycle
	}
	if k <= 0 {
		return nil
	}

	order := make([]Edge[T], len(candidates))
	copy(order, candidates)
	rng := rngFromSeed(g.seed)
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	sort.SliceStable(order, func(i, j int) bool { return order[i].Weight < order[j].Weight })

	remaining := k
	for _, e := range order {
		if g.HasEdge(e.From, e.To) {
			continue
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("KEdgeAugmentation: %w", err)
		}
		if g.IsCyclic() {
			// Rollback: the edge just appended closes a cycle.
			g.edges = g.edges[:len(g.edges)-1]
			delete(g.eindex, e.Key())
			continue
		}
		remaining--
		if remaining == 0 {
			return nil
		}
	}

	return fmt.Errorf("KEdgeAugmentation: added %d of %d: %w", k-remaining, k, ErrInsufficientEdges)
}

// SpanningTree augments the graph one edge at a time until it is connected,
// reseeding between rounds when reseed is true. The graph must start as a
// forest; a graph that is already a tree is left untouched.
//
// Returns the number of edges added.
// Errors: ErrContainsCycle, ErrInsufficientEdges, or an AddEdge error from a
// malformed candidate.
//
// Complexity: O(R · C·(V+E)) for R rounds.
func (g *Graph[T]) SpanningTree(candidates []Edge[T], reseed bool) (int, error) {
	added := 0
	for !g.IsConnected() {
		if err := g.KEdgeAugmentation(1, candidates); err != nil {
			return added, err
		}
		added++
		if reseed {
			g.UpdateSeed()
		}
	}
	if g.IsCyclic() {
		return added, ErrContainsCycle
	}

	return added, nil
}
