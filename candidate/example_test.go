package candidate_test

import (
	"fmt"

	"github.com/optimizationBenchmarking/tspSuite-sub014/candidate"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

func ExampleAllocate() {
	// Five points on a line: 0, 1, 3, 6, 10.
	in, _ := objective.NewPlanar("line", [][2]float64{{0, 0}, {1, 0}, {3, 0}, {6, 0}, {10, 0}})

	s := candidate.Allocate(in, 2, nil)
	fmt.Println(s.Candidate(3, 1), s.Candidate(3, 2))
	fmt.Println(s.PseudoID(3, 2), s.PseudoID(3, 5))
	// Output:
	// 1 2
	// 2 0
}

func ExampleNewEdgeNumber() {
	e, _ := candidate.NewEdgeNumber(candidate.EdgeNumberConfig{N: 4, Symmetric: true, Max: 10}, nil, nil)
	e.Inc(1, 3)
	e.Inc(3, 1)
	fmt.Println(e.Kind(), e.GetInt(1, 3))
	// Output: int8 2
}
