package generator_test

import (
	"fmt"

	"github.com/katalvlaran/transportation/generator"
)

// ExampleGenerate shows the balance guarantee.
func ExampleGenerate() {
	tbl, err := generator.Generate[int](3, 4, generator.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	var s, d int
	for _, x := range tbl.Supply() {
		s += x
	}
	for _, x := range tbl.Demand() {
		d += x
	}
	fmt.Println(tbl.N(), tbl.M(), s == d)
	// Output: 3 4 true
}
