// SPDX-License-Identifier: MIT

// Package transport - problem file format.
//
//	n m
//	c11 c12 ... c1m s1
//	...
//	cn1 cn2 ... cnm sn
//	d1 d2 ... dm
//
// Tokens are separated by any run of spaces or tabs. Whitespace-only lines
// after the demand line are tolerated; any other trailing content is
// rejected with ErrInvalidTrailingData.

package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/transportation/matrix"
)

// lineErrorf attaches a 1-based line number and detail to a sentinel.
func lineErrorf(line int, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: line %d: %s: %w", opParse, line, fmt.Sprintf(format, args...), sentinel)
}

// parseScalar parses one token as T, choosing the strconv routine and bit
// size from T's kind. NaN and ±Inf spellings are rejected.
func parseScalar[T matrix.Number](tok string) (T, error) {
	var zero T
	kind, size := kindOf[T]()
	switch kind {
	case kindSigned:
		v, err := strconv.ParseInt(tok, 10, size)
		if err != nil {
			return zero, err
		}
		return T(v), nil
	case kindUnsigned:
		v, err := strconv.ParseUint(tok, 10, size)
		if err != nil {
			return zero, err
		}
		return T(v), nil
	default:
		v, err := strconv.ParseFloat(tok, size)
		if err != nil {
			return zero, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return zero, errNotFinite
		}
		return T(v), nil
	}
}

var errNotFinite = errors.New("not a finite number")

// lineReader yields lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the fields of the next line, or ErrMalformedInput at EOF.
func (lr *lineReader) next(what string) ([]string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", opParse, err)
		}
		return nil, lineErrorf(lr.line+1, ErrMalformedInput, "missing %s", what)
	}
	lr.line++

	return strings.Fields(lr.sc.Text()), nil
}

// Parse reads a problem in the file format above and returns a Table with
// an all-zero transport matrix.
//
// Implementation:
//   - Stage 1: header "n m", both positive integers. The header only sets
//     the expected token counts; nothing is sized from it before the rows
//     have actually been read.
//   - Stage 2: n rows of exactly m costs plus the row's supply.
//   - Stage 3: one row of exactly m demands.
//   - Stage 4: reject non-blank trailing lines.
//   - Stage 5: assemble through New (balance and sign checks).
//
// Errors:
//   - ErrMalformedInput (token count, non-numeric or non-finite token,
//     missing line), ErrInvalidTrailingData, ErrUnbalancedProblem,
//     ErrNegativeQuantity.
//
// Complexity:
//   - Time O(n*m), Space O(n*m).
func Parse[T matrix.Number](r io.Reader) (*Table[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lr := &lineReader{sc: sc}

	head, err := lr.next("header")
	if err != nil {
		return nil, err
	}
	if len(head) != 2 {
		return nil, lineErrorf(lr.line, ErrMalformedInput, "header has %d tokens, want 2", len(head))
	}
	n, errN := strconv.Atoi(head[0])
	m, errM := strconv.Atoi(head[1])
	if errN != nil || errM != nil || n < 1 || m < 1 {
		return nil, lineErrorf(lr.line, ErrMalformedInput, "header %q is not two positive integers", strings.Join(head, " "))
	}

	var (
		i, j   int
		fields []string
		row    []T
		x      T
		rows   [][]T
		supply []T
	)
	for i = 0; i < n; i++ {
		if fields, err = lr.next(fmt.Sprintf("cost row %d", i+1)); err != nil {
			return nil, err
		}
		if len(fields) != m+1 {
			return nil, lineErrorf(lr.line, ErrMalformedInput, "cost row has %d tokens, want %d", len(fields), m+1)
		}
		row = make([]T, m)
		for j = 0; j <= m; j++ {
			if x, err = parseScalar[T](fields[j]); err != nil {
				return nil, lineErrorf(lr.line, ErrMalformedInput, "token %d %q: %v", j+1, fields[j], err)
			}
			if j == m {
				supply = append(supply, x)
				continue
			}
			row[j] = x
		}
		rows = append(rows, row)
	}

	if fields, err = lr.next("demand row"); err != nil {
		return nil, err
	}
	if len(fields) != m {
		return nil, lineErrorf(lr.line, ErrMalformedInput, "demand row has %d tokens, want %d", len(fields), m)
	}
	demand := make([]T, m)
	for j = 0; j < m; j++ {
		if demand[j], err = parseScalar[T](fields[j]); err != nil {
			return nil, lineErrorf(lr.line, ErrMalformedInput, "token %d %q: %v", j+1, fields[j], err)
		}
	}

	for lr.sc.Scan() {
		lr.line++
		if strings.TrimSpace(lr.sc.Text()) != "" {
			return nil, lineErrorf(lr.line, ErrInvalidTrailingData, "unexpected %q", lr.sc.Text())
		}
	}
	if err = lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opParse, err)
	}

	costs, err := matrix.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opParse, err)
	}
	transport, err := matrix.NewEmpty[T](n, m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opParse, err)
	}
	t, err := New(costs, transport, supply, demand)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opParse, err)
	}

	return t, nil
}

// Format writes the problem (costs, supply, demand) of t in the file format
// read by Parse. The allocation is not part of the format.
// Complexity: O(n*m).
func Format[T matrix.Number](w io.Writer, t *Table[T]) error {
	if t == nil {
		return ErrNilTable
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", t.n, t.m)
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.m; j++ {
			fmt.Fprint(bw, t.cost(i, j), " ")
		}
		fmt.Fprint(bw, t.supply[i], "\n")
	}
	for j = 0; j < t.m; j++ {
		if j > 0 {
			bw.WriteByte(' ')
		}
		fmt.Fprint(bw, t.demand[j])
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
