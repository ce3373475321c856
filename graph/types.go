// SPDX-License-Identifier: MIT

// Package graph defines the generic undirected weighted Graph over string
// labeled vertices, its Edge type and the sentinel errors returned by graph
// mutations and the augmentation procedure.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex label is the empty string.
//	ErrDuplicateVertex   - vertex label already present.
//	ErrVertexNotFound    - edge endpoint is not a vertex of the graph.
//	ErrDuplicateEdge     - an equal (undirected) edge already exists.
//	ErrLoopNotAllowed    - edge from a vertex to itself.
//	ErrEdgeNotFound      - removal of an absent edge.
//	ErrAlreadyConnected  - augmentation requested on a connected graph.
//	ErrContainsCycle     - augmentation requested on a cyclic graph.
//	ErrInsufficientEdges - candidates ran out before k edges were added.
package graph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("graph: vertex label is empty")

	// ErrDuplicateVertex indicates an attempt to add a label that already exists.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDuplicateEdge indicates an attempt to add an edge equal (in either
	// orientation) to one already present.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrAlreadyConnected indicates KEdgeAugmentation was called on a connected graph.
	ErrAlreadyConnected = errors.New("graph: graph is already connected")

	// ErrContainsCycle indicates KEdgeAugmentation was called on a graph with a cycle.
	ErrContainsCycle = errors.New("graph: graph contains a cycle")

	// ErrInsufficientEdges indicates fewer than k candidates could be added without a cycle.
	ErrInsufficientEdges = errors.New("graph: not enough edges to augment the graph")
)

// Weight is the constraint on edge weights: any ordered scalar. Augmentation
// sorts candidates by it.
type Weight interface {
	constraints.Integer | constraints.Float
}

// EdgeKey is the canonical unordered identity of an edge: A <= B
// lexicographically. Two edges are equal iff their keys are equal.
type EdgeKey struct {
	A, B string
}

// KeyOf returns the canonical key of the unordered pair {u, v}.
// Complexity: O(1).
func KeyOf(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}

	return EdgeKey{A: u, B: v}
}

// Edge is an undirected weighted connection between two vertex labels.
// From/To keep the orientation the edge was created with for display only;
// identity is orientation-free (see Key).
type Edge[T Weight] struct {
	From   string
	To     string
	Weight T
}

// NewEdge is a convenience constructor.
func NewEdge[T Weight](from, to string, weight T) Edge[T] {
	return Edge[T]{From: from, To: to, Weight: weight}
}

// Key returns the canonical unordered key of e.
func (e Edge[T]) Key() EdgeKey { return KeyOf(e.From, e.To) }

// Equal reports undirected equality: {From,To} == {o.From,o.To}. Weight is ignored.
func (e Edge[T]) Equal(o Edge[T]) bool { return e.Key() == o.Key() }

// Other returns the endpoint opposite to v (v must be an endpoint).
func (e Edge[T]) Other(v string) string {
	if e.From == v {
		return e.To
	}

	return e.From
}

// String renders the edge as "(From -> To)".
func (e Edge[T]) String() string { return fmt.Sprintf("(%s -> %s)", e.From, e.To) }

// Option configures a Graph before creation.
type Option func(*options)

type options struct {
	seed   int64
	seeded bool
}

// WithSeed fixes the augmentation seed instead of deriving it from the wall
// clock, making KEdgeAugmentation reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// Graph is an undirected, weighted, simple graph over unique string labels.
//
// Vertices and edges keep insertion order (Vertices/Edges are deterministic).
// vindex and eindex give O(1) membership checks; eindex is keyed by the
// canonical unordered pair, so duplicate detection is orientation-free.
// A Graph is not safe for concurrent mutation; each algorithm run owns its own.
type Graph[T Weight] struct {
	vertices []string       // insertion-ordered labels
	vindex   map[string]int // label → position in vertices
	edges    []Edge[T]      // insertion-ordered edges
	eindex   map[EdgeKey]int
	seed     int64 // augmentation tie-break seed
}

// New creates an empty Graph. Without WithSeed the seed comes from the wall clock.
// Complexity: O(1).
func New[T Weight](opts ...Option) *Graph[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = clockSeed()
	}

	return &Graph[T]{
		vindex: make(map[string]int),
		eindex: make(map[EdgeKey]int),
		seed:   o.seed,
	}
}
