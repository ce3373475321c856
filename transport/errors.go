// SPDX-License-Identifier: MIT
// Package transport: sentinel error set.
// Every failure of a Table operation, of Parse and of the potentials solve
// is one of these (possibly wrapped with context) or a matrix/graph sentinel
// passed through unchanged. Match with errors.Is.

package transport

import "errors"

var (
	// ErrDimensionMismatch indicates that costs, transport, supply and demand
	// shapes disagree, or that a nil matrix was supplied.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrUnbalancedProblem indicates Σsupply != Σdemand.
	ErrUnbalancedProblem = errors.New("transport: supply and demand are not balanced")

	// ErrEmptyProblem indicates a problem with no supply rows or no demand columns.
	ErrEmptyProblem = errors.New("transport: problem has no rows or no columns")

	// ErrNegativeQuantity indicates a negative cost, supply, demand or allocation.
	ErrNegativeQuantity = errors.New("transport: negative quantity")

	// ErrNonFinite indicates a NaN or infinite cost, supply, demand or allocation.
	ErrNonFinite = errors.New("transport: non-finite quantity")

	// ErrMalformedInput indicates a structurally invalid problem file: wrong
	// token counts, non-numeric fields or missing lines.
	ErrMalformedInput = errors.New("transport: malformed input")

	// ErrInvalidTrailingData indicates non-blank content after the demand line.
	ErrInvalidTrailingData = errors.New("transport: invalid trailing data")

	// ErrNotATree indicates potentials were requested on a graph that is not
	// a spanning tree over exactly S1..Sn, D1..Dm.
	ErrNotATree = errors.New("transport: graph is not a spanning tree")

	// ErrInvalidLabel indicates a vertex label that is not S{i} or D{j}.
	ErrInvalidLabel = errors.New("transport: invalid vertex label")

	// ErrNilTable indicates a nil *Table was passed to a package function.
	ErrNilTable = errors.New("transport: nil table")
)
