// SPDX-License-Identifier: MIT

// Package graph - connectivity and cycle queries.
//
// All queries treat edges as undirected and run an iterative depth-first
// traversal over a freshly built adjacency, so each is O(V + E).
package graph

// IsConnected reports whether a traversal from the first-added vertex reaches
// every vertex. An empty graph is defined as not connected.
// Complexity: O(V+E).
func (g *Graph[T]) IsConnected() bool {
	if len(g.vertices) == 0 {
		return false
	}
	adj := g.adjacency()
	visited := make([]bool, len(g.vertices))
	stack := []int{0}
	visited[0] = true
	count := 1

	var u, w int
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eid := range adj[u] {
			w = g.vindex[g.edges[eid].Other(g.vertices[u])]
			if !visited[w] {
				visited[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}

	return count == len(g.vertices)
}

// frame is one DFS stack entry: a vertex and the edge used to reach it
// (-1 for a traversal root).
type frame struct {
	v   int
	via int
}

// cycleWitness runs the parent-edge-excluding traversal over every component.
// It returns the first non-tree edge found and the traversal parent-edge
// table, or found=false when the graph is a forest.
func (g *Graph[T]) cycleWitness() (closing int, parentEdge []int, found bool) {
	n := len(g.vertices)
	adj := g.adjacency()
	visited := make([]bool, n)
	parentEdge = make([]int, n)

	var (
		root, w int
		top     frame
		stack   []frame
	)
	for root = 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		parentEdge[root] = -1
		stack = append(stack[:0], frame{v: root, via: -1})
		for len(stack) > 0 {
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, eid := range adj[top.v] {
				// The edge that led here is not evidence of a cycle.
				if eid == top.via {
					continue
				}
				w = g.vindex[g.edges[eid].Other(g.vertices[top.v])]
				if visited[w] {
					return eid, parentEdge, true
				}
				visited[w] = true
				parentEdge[w] = eid
				stack = append(stack, frame{v: w, via: eid})
			}
		}
	}

	return -1, parentEdge, false
}

// IsCyclic reports whether any traversal reaches an already-visited vertex
// through an edge other than the one used to arrive from its parent.
// Complexity: O(V+E).
func (g *Graph[T]) IsCyclic() bool {
	_, _, found := g.cycleWitness()
	return found
}

// IsTree reports IsConnected() && !IsCyclic().
// Complexity: O(V+E).
func (g *Graph[T]) IsTree() bool {
	return g.IsConnected() && !g.IsCyclic()
}

// IsForest reports whether the graph has no cycle (connected or not).
// Complexity: O(V+E).
func (g *Graph[T]) IsForest() bool { return !g.IsCyclic() }

// FindCycle returns the edges of one cycle as a closed walk, or ok=false when
// the graph is acyclic. Intended for diagnostics.
//
// Steps:
//  1. Find a non-tree edge (u,w) of the traversal forest.
//  2. Walk u's traversal ancestors into a set.
//  3. Walk w upward until it meets that set (the lowest common ancestor).
//  4. Emit u→lca, lca→w, then the closing edge w–u.
//
// Complexity: O(V+E).
func (g *Graph[T]) FindCycle() ([]Edge[T], bool) {
	closing, parentEdge, found := g.cycleWitness()
	if !found {
		return nil, false
	}
	ce := g.edges[closing]
	u, w := g.vindex[ce.From], g.vindex[ce.To]

	// parent vertex of x in the traversal forest, or -1 at a root.
	parent := func(x int) int {
		if parentEdge[x] < 0 {
			return -1
		}
		return g.vindex[g.edges[parentEdge[x]].Other(g.vertices[x])]
	}

	onPathU := make(map[int]int) // vertex → depth index along u's ancestor chain
	var x, depth int
	for x, depth = u, 0; x >= 0; x, depth = parent(x), depth+1 {
		onPathU[x] = depth
	}
	var wSide []Edge[T] // edges from w up to the lca, bottom-up
	for x = w; ; x = parent(x) {
		if _, ok := onPathU[x]; ok {
			break
		}
		wSide = append(wSide, g.edges[parentEdge[x]])
	}
	lca := x

	cycle := make([]Edge[T], 0, onPathU[lca]+len(wSide)+1)
	for x = u; x != lca; x = parent(x) {
		cycle = append(cycle, g.edges[parentEdge[x]])
	}
	var i int
	for i = len(wSide) - 1; i >= 0; i-- {
		cycle = append(cycle, wSide[i])
	}
	cycle = append(cycle, ce)

	return cycle, true
}
