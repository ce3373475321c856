// SPDX-License-Identifier: MIT

package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/transport"
)

// Sentinel errors.
var (
	// ErrInvalidSize indicates n < 1 or m < 1, or a negative batch count.
	ErrInvalidSize = errors.New("generator: invalid size")

	// ErrInvalidRange indicates a value range with lo < 0 or hi <= lo.
	ErrInvalidRange = errors.New("generator: invalid range")
)

// Default value ranges, half-open: [1, 100).
const (
	DefaultLo = 1
	DefaultHi = 100
)

// Options configures Generate. Zero Options is not valid; use DefaultOptions.
type Options struct {
	Seed           int64 // 0 ⇒ fixed default seed
	CostLo, CostHi int   // unit costs in [CostLo, CostHi)
	QtyLo, QtyHi   int   // hidden allocation cells in [QtyLo, QtyHi)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns costs and quantities in [1, 100) with the default seed.
func DefaultOptions() Options {
	return Options{CostLo: DefaultLo, CostHi: DefaultHi, QtyLo: DefaultLo, QtyHi: DefaultHi}
}

// WithSeed fixes the RNG seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithCostRange sets the half-open unit cost range.
func WithCostRange(lo, hi int) Option {
	return func(o *Options) { o.CostLo, o.CostHi = lo, hi }
}

// WithQuantityRange sets the half-open range of hidden allocation cells.
func WithQuantityRange(lo, hi int) Option {
	return func(o *Options) { o.QtyLo, o.QtyHi = lo, hi }
}

func (o Options) validate() error {
	if o.CostLo < 0 || o.CostHi <= o.CostLo {
		return fmt.Errorf("cost [%d,%d): %w", o.CostLo, o.CostHi, ErrInvalidRange)
	}
	if o.QtyLo < 0 || o.QtyHi <= o.QtyLo {
		return fmt.Errorf("quantity [%d,%d): %w", o.QtyLo, o.QtyHi, ErrInvalidRange)
	}

	return nil
}

// Generate returns a random balanced n×m problem with an all-zero plan.
//
// Values are integers converted to T; the caller picks a T wide enough for
// row sums of m values below QtyHi.
//
// Errors: ErrInvalidSize, ErrInvalidRange, or a transport.New error.
// Complexity: O(n*m).
func Generate[T matrix.Number](n, m int, opts ...Option) (*transport.Table[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return generate[T](n, m, o)
}

func generate[T matrix.Number](n, m int, o Options) (*transport.Table[T], error) {
	if n < 1 || m < 1 {
		return nil, fmt.Errorf("generator: %dx%d: %w", n, m, ErrInvalidSize)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	rng := rngFromSeed(o.Seed)
	rows := make([][]T, n)
	supply := make([]T, n)
	demand := make([]T, m)
	var (
		i, j int
		q    T
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]T, m)
		for j = 0; j < m; j++ {
			rows[i][j] = T(o.CostLo + rng.Intn(o.CostHi-o.CostLo))
			q = T(o.QtyLo + rng.Intn(o.QtyHi-o.QtyLo))
			supply[i] += q
			demand[j] += q
		}
	}
	costs, err := matrix.New(rows)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	plan, err := matrix.NewEmpty[T](n, m)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	return transport.New(costs, plan, supply, demand)
}

// Batch generates count instances whose seeds are derived from the base
// seed and the instance index; instance k is reproducible on its own.
//
// Errors: as Generate; ErrInvalidSize for count < 0.
// Complexity: O(count*n*m).
func Batch[T matrix.Number](count, n, m int, opts ...Option) ([]*transport.Table[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("generator: batch of %d: %w", count, ErrInvalidSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	base := o.Seed
	if base == 0 {
		base = defaultSeed
	}

	out := make([]*transport.Table[T], 0, count)
	var k int
	for k = 0; k < count; k++ {
		o.Seed = deriveSeed(base, uint64(k))
		t, err := generate[T](n, m, o)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}

	return out, nil
}

// InstanceSeed returns the seed Batch uses for instance k of base seed.
func InstanceSeed(base int64, k int) int64 {
	if base == 0 {
		base = defaultSeed
	}
	return deriveSeed(base, uint64(k))
}
