// SPDX-License-Identifier: MIT

// Package matrix: numeric constraints and shared operation tags.
// This file contains ONLY the scalar type sets the generic Dense is
// parametrized over, plus the op* tags used for uniform error wrapping.
package matrix

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the scalar type set accepted by Dense: every built-in integer
// and floating-point kind. It carries ordering, + - * and a zero value,
// which is everything the algebra and the transportation pipeline need.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is the scalar type set accepted as a Solve target. Elimination
// divides and produces negative intermediates, so unsigned kinds are out.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Operation name constants for unified error wrapping.
const (
	opNew       = "New"
	opNewEmpty  = "NewEmpty"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opSolve     = "Solve"
)

// Method tags for Dense accessor errors.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
	ctxCol = "Col"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
//
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches method context and coordinates to a sentinel.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
