package localsearch_test

import (
	"fmt"

	"github.com/optimizationBenchmarking/tspSuite-sub014/localsearch"
	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

func ExampleAlgorithm_Solve() {
	// Eight points in convex position; the optimum is the perimeter, 8·8.
	in, _ := objective.NewPlanar("octagon", [][2]float64{
		{0, 10}, {7, 7}, {10, 0}, {7, -7}, {0, -10}, {-7, -7}, {-10, 0}, {-7, 7},
	})
	ev, _ := objective.New(in, objective.Options{Seed: 3, Budget: objective.Budget{MaxFEs: 200}})

	a, _ := localsearch.New[*localsearch.Path]("2opt", localsearch.TwoOpt{})
	ind, err := a.Solve(localsearch.NewPath(in.N()), ev)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ind.Length, ind.Producer.Name())
	// Output: 64 2opt
}
