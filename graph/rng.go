// SPDX-License-Identifier: MIT

// Package graph - RNG utilities for augmentation tie-breaking.
//
// The only randomness in this package is the candidate shuffle inside
// KEdgeAugmentation. It is driven by the per-graph seed so that a fixed seed
// gives a fully reproducible run.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; a fresh one is created per call.
package graph

import (
	"math/rand"
	"time"
)

// clockSeed derives a seed from the current wall-clock time.
func clockSeed() int64 {
	return time.Now().UnixNano()
}

// rngFromSeed returns a deterministic *rand.Rand for seed (used verbatim).
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Seed returns the seed the next KEdgeAugmentation call will use.
func (g *Graph[T]) Seed() int64 { return g.seed }

// SetSeed replaces the augmentation seed.
func (g *Graph[T]) SetSeed(seed int64) { g.seed = seed }

// UpdateSeed reseeds from the current wall-clock time, varying the candidate
// order across repeated augmentation calls.
func (g *Graph[T]) UpdateSeed() { g.seed = clockSeed() }
