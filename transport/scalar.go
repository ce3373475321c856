// SPDX-License-Identifier: MIT

// Package transport - scalar helpers shared by validation and parsing.
//
// Table is generic over every integer and float kind. Totals are never
// accumulated in T, so a narrow T cannot wrap: integers are summed in 128
// bits, floats in float64.

package transport

import (
	"math"
	"math/big"
	"math/bits"
	"reflect"
	"strconv"

	"github.com/katalvlaran/transportation/matrix"
)

// scalarKind is the arithmetic family of a Number type.
type scalarKind int

const (
	kindSigned scalarKind = iota
	kindUnsigned
	kindFloat
)

// kindOf classifies T and reports its bit size.
func kindOf[T matrix.Number]() (scalarKind, int) {
	var zero T
	rt := reflect.TypeOf(zero)
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindSigned, rt.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return kindUnsigned, rt.Bits()
	default:
		return kindFloat, rt.Bits()
	}
}

// isFinite is false for NaN and ±Inf; integers are always finite.
func isFinite[T matrix.Number](x T) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// total is an overflow-free sum of non-negative finite values.
type total struct {
	hi, lo uint64  // integer kinds: 128-bit accumulator
	f      float64 // float kinds
}

// sumOf adds xs without wrap-around. xs must already be non-negative and
// finite. ok is false when a float total leaves the float64 range.
func sumOf[T matrix.Number](xs []T) (s total, ok bool) {
	kind, _ := kindOf[T]()
	if kind == kindFloat {
		for _, x := range xs {
			s.f += float64(x)
		}
		return s, !math.IsInf(s.f, 0)
	}
	var carry uint64
	for _, x := range xs {
		s.lo, carry = bits.Add64(s.lo, uint64(x), 0)
		s.hi += carry
	}

	return s, true
}

// String renders the total in decimal.
func (s total) String() string {
	if s.hi == 0 && s.lo == 0 && s.f != 0 {
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	}
	if s.hi == 0 {
		return strconv.FormatUint(s.lo, 10)
	}
	v := new(big.Int).SetUint64(s.hi)
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(s.lo))

	return v.String()
}
