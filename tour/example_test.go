package tour_test

import (
	"fmt"

	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

func ExampleSatelliteList_Reverse() {
	l, _ := tour.PathToSatellite([]int{1, 2, 3, 4, 5, 6})

	// Reverse 3..5, entered from 2 and left towards 6.
	_ = l.Reverse(2, 3, 5, 6)

	path, _ := tour.SatelliteToPath(l, nil)
	fmt.Println(tour.EqualCycles(path, []int{1, 2, 5, 4, 3, 6}))
	// Output: true
}

func ExampleUndoableList() {
	l := tour.NewUndoableList(5)
	_ = l.LoadPath([]int{1, 2, 3, 4, 5})

	_ = l.DoReverse(1, 2, 4, 5)
	fmt.Println(l.IsBalanced(), l.IsTour())

	_ = l.UndoReverse(1, 2, 4, 5)
	path, _ := l.AppendPath(nil)
	fmt.Println(path)
	// Output:
	// true true
	// [1 2 3 4 5]
}
