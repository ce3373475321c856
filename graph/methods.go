// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Vertex & edge lifecycle and read-only queries.
// Determinism:
//   - Vertices() and Edges() return insertion order.
// Invariants (enforced on every mutation):
//   - no duplicate label, no duplicate undirected edge, no self-loop,
//     both endpoints of every edge are vertices.

package graph

import "fmt"

// AddVertex inserts a new vertex with the given label.
// Returns ErrEmptyVertexID for "" and ErrDuplicateVertex if the label exists.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vindex[label]; exists {
		return fmt.Errorf("AddVertex(%q): %w", label, ErrDuplicateVertex)
	}
	g.vindex[label] = len(g.vertices)
	g.vertices = append(g.vertices, label)

	return nil
}

// AddVertices adds labels in order, stopping at the first failure.
// Complexity: O(len(labels)).
func (g *Graph[T]) AddVertices(labels ...string) error {
	for _, l := range labels {
		if err := g.AddVertex(l); err != nil {
			return err
		}
	}

	return nil
}

// HasVertex reports whether label is a vertex.
// Complexity: O(1).
func (g *Graph[T]) HasVertex(label string) bool {
	_, ok := g.vindex[label]
	return ok
}

// checkEdge validates an edge against the graph invariants without mutating.
func (g *Graph[T]) checkEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return fmt.Errorf("edge %s: %w", from, ErrLoopNotAllowed)
	}
	if !g.HasVertex(from) {
		return fmt.Errorf("edge %s-%s: %q: %w", from, to, from, ErrVertexNotFound)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("edge %s-%s: %q: %w", from, to, to, ErrVertexNotFound)
	}
	if _, exists := g.eindex[KeyOf(from, to)]; exists {
		return fmt.Errorf("edge %s-%s: %w", from, to, ErrDuplicateEdge)
	}

	return nil
}

// AddEdge inserts the undirected edge from–to with the given weight.
//
// Steps:
//  1. Validate labels, self-loop and endpoint existence.
//  2. Reject when an equal edge exists in either orientation.
//  3. Append and index by canonical key.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrDuplicateEdge.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to string, weight T) error {
	if err := g.checkEdge(from, to); err != nil {
		return err
	}
	g.eindex[KeyOf(from, to)] = len(g.edges)
	g.edges = append(g.edges, Edge[T]{From: from, To: to, Weight: weight})

	return nil
}

// AddEdges inserts a batch of edges all-or-nothing: the batch is validated
// against the graph and against itself before anything is added.
// Complexity: O(len(edges)).
func (g *Graph[T]) AddEdges(edges []Edge[T]) error {
	seen := make(map[EdgeKey]struct{}, len(edges))
	for _, e := range edges {
		if err := g.checkEdge(e.From, e.To); err != nil {
			return err
		}
		if _, dup := seen[e.Key()]; dup {
			return fmt.Errorf("edge %s-%s: %w", e.From, e.To, ErrDuplicateEdge)
		}
		seen[e.Key()] = struct{}{}
	}
	for _, e := range edges {
		g.eindex[e.Key()] = len(g.edges)
		g.edges = append(g.edges, e)
	}

	return nil
}

// RemoveEdge deletes the edge {from,to} (either orientation).
// Returns ErrEdgeNotFound when absent.
// Complexity: O(1) for the most recently added edge, O(E) otherwise
// (later edges shift to keep insertion order).
func (g *Graph[T]) RemoveEdge(from, to string) error {
	k := KeyOf(from, to)
	pos, ok := g.eindex[k]
	if !ok {
		return fmt.Errorf("edge %s-%s: %w", from, to, ErrEdgeNotFound)
	}
	delete(g.eindex, k)
	if pos == len(g.edges)-1 {
		g.edges = g.edges[:pos]
		return nil
	}
	copy(g.edges[pos:], g.edges[pos+1:])
	g.edges = g.edges[:len(g.edges)-1]
	var i int
	for i = pos; i < len(g.edges); i++ {
		g.eindex[g.edges[i].Key()] = i
	}

	return nil
}

// HasEdge reports whether {from,to} is an edge, in either orientation.
// Complexity: O(1).
func (g *Graph[T]) HasEdge(from, to string) bool {
	_, ok := g.eindex[KeyOf(from, to)]
	return ok
}

// Edge returns the stored edge {from,to}.
// Complexity: O(1).
func (g *Graph[T]) Edge(from, to string) (Edge[T], bool) {
	pos, ok := g.eindex[KeyOf(from, to)]
	if !ok {
		return Edge[T]{}, false
	}

	return g.edges[pos], true
}

// Vertices returns a copy of the vertex labels in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// Edges returns a copy of the edges in insertion order.
// Complexity: O(E).
func (g *Graph[T]) Edges() []Edge[T] {
	out := make([]Edge[T], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph[T]) EdgeCount() int { return len(g.edges) }

// Neighbors returns the labels adjacent to v in edge insertion order.
// Complexity: O(E).
func (g *Graph[T]) Neighbors(v string) ([]string, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%q): %w", v, ErrVertexNotFound)
	}
	var out []string
	for _, e := range g.edges {
		if e.From == v || e.To == v {
			out = append(out, e.Other(v))
		}
	}

	return out, nil
}

// Clone returns an independent copy (same vertices, edges and seed).
// Complexity: O(V+E).
func (g *Graph[T]) Clone() *Graph[T] {
	c := &Graph[T]{
		vertices: make([]string, len(g.vertices)),
		vindex:   make(map[string]int, len(g.vindex)),
		edges:    make([]Edge[T], len(g.edges)),
		eindex:   make(map[EdgeKey]int, len(g.eindex)),
		seed:     g.seed,
	}
	copy(c.vertices, g.vertices)
	copy(c.edges, g.edges)
	for k, v := range g.vindex {
		c.vindex[k] = v
	}
	for k, v := range g.eindex {
		c.eindex[k] = v
	}

	return c
}

// adjacency builds, per vertex position, the list of incident edge positions.
// Complexity: O(V+E).
func (g *Graph[T]) adjacency() [][]int {
	adj := make([][]int, len(g.vertices))
	var u, v int
	for idx, e := range g.edges {
		u, v = g.vindex[e.From], g.vindex[e.To]
		adj[u] = append(adj[u], idx)
		adj[v] = append(adj[v], idx)
	}

	return adj
}
