// Package tspsuite is a toolbox for benchmarking Travelling Salesman
// Problem algorithms: exact solvers, local searches and the data structures
// they share.
//
// What is inside:
//
//	• Objective: immutable instances, evaluation counting, run budgets
//	• Tour representations: paths, satellite lists, undoable tour lists
//	• Candidate sets: m nearest neighbors per node, compact edge stores
//	• Exact solvers: Held–Karp branch and bound, Held–Karp dynamic program
//	• Heuristics: Christofides, nearest neighbor, 2-opt, Or-opt, iterated
//	  local search with perturbation and a mutation adapter
//
// Everything is organized in subpackages:
//
//	objective/    Instance, Objective, Evaluator, Budget, seeded RNG
//	tour/         path utilities, SatelliteList, UndoableList
//	candidate/    Set, Proxy, SubSet, AllocatePlanar (R-tree), EdgeNumber
//	heldkarp/     Solve (1-tree branch and bound), SolveDP
//	construct/    starting tours: Christofides, NearestNeighbor
//	localsearch/  Algorithm, Mutator, TwoOpt, OrOpt, CandidateTwoOpt
//	cmd/tspsuite  command-line harness (solve, search, candidates)
//
// Node ids are 1..n everywhere in the public API; tours are permutations of
// them, read as closed cycles.
//
// The core packages perform no I/O and are deterministic for a fixed seed.
// Objectives are owned by a single run; independent runs go concurrent by
// giving each its own Evaluator, as the harness does.
//
//	go install github.com/optimizationBenchmarking/tspSuite-sub014/cmd/tspsuite@latest
package tspsuite
