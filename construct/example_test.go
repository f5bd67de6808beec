package construct_test

import (
	"fmt"

	"github.com/optimizationBenchmarking/tspSuite-sub014/construct"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

func ExampleChristofides() {
	in, _ := objective.NewPlanar("square", [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}})

	path, err := construct.Christofides(in, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(path, in.Length(path))
	// Output: [1 2 3 4] 40
}
