package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/transportation/matrix"
)

// ExampleSolve solves a small system stored as uint32 in the wider int64 kind.
func ExampleSolve() {
	a, _ := matrix.New([][]uint32{
		{1, 1},
		{0, 1},
	})
	x, err := matrix.Solve(a, []int64{5, 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)
	// Output:
	// [3 2]
}

// ExampleDense_IndexOf locates the minimum of a reduced-cost matrix.
func ExampleDense_IndexOf() {
	m, _ := matrix.New([][]int64{
		{0, 3, -2},
		{0, 0, 5},
	})
	lo, _ := m.Min()
	i, j, _ := m.IndexOf(lo)
	fmt.Printf("min=%d at (%d,%d)\n", lo, i, j)
	// Output:
	// min=-2 at (0,2)
}
