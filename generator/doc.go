// Package generator builds random balanced transportation problems for
// benchmarks and property tests.
//
// An instance is drawn as a cost matrix and a hidden allocation matrix, both
// uniform integers in [lo, hi). Supply is the row sums of the hidden
// allocation and demand its column sums, so every instance is balanced by
// construction and has at least one strictly positive feasible plan.
//
// Determinism:
//   - Same seed ⇒ same instance. Seed 0 selects a fixed default seed.
//   - Batch derives one independent stream per instance from the base seed.
package generator
