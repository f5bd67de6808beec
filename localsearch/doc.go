// Package localsearch provides the shared control flow of iterated local
// searches and a mutation adapter that embeds them in population-based
// metaheuristics.
//
// An Algorithm is generic over the tour representation P (see Solution):
// *Path, *tour.SatelliteList and *tour.UndoableList all qualify. The only
// algorithm-specific part is the Searcher hook; everything else is driven by
// small closed policy types:
//
//   - Perturbation: kicks a solution out of a local optimum
//     (PathShuffle by default, DoubleBridge).
//   - Acceptance:   decides whether the working solution continues from a
//     new local optimum or falls back to the best one
//     (AcceptIfBetterOrEqual by default).
//   - Termination:  ends a Run early depending on the current length and the
//     length before the first perturbation (TerminateNever by default).
//   - MaxIterations caps the number of Searcher calls (0 = unbounded).
//
// Main loop of Run:
//
//	perturb first if the individual was produced by this algorithm
//	loop:
//	    budget exhausted? → stop
//	    search
//	    remember the best solution
//	    budget exhausted? termination policy? iteration cap? → stop
//	    rejected by the acceptance policy? → restore the best solution
//	    perturb
//	keep current or best according to the acceptance policy
//	mark the algorithm as producer
//
// Every tour a Searcher or a perturbation produces is evaluated (or
// registered) with the Objective, so the run's best-so-far and its FE count
// are always current.
//
// Concurrency: an Algorithm owns scratch buffers and must not be shared
// between goroutines. Independent runs use independent Algorithms.
package localsearch
