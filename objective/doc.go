// Package objective defines the contract between the tour-solving core and
// the benchmarking harness: distance queries, tour evaluation, the run budget
// and the random source.
//
// The core (packages tour, candidate, heldkarp and localsearch) only ever
// talks to an Objective. This package also ships an in-memory implementation,
// Evaluator, backed by an Instance (dense integer distance matrix, optionally
// with planar coordinates).
//
// Node ids are 1..n everywhere. Distances are integral (int64), as in TSPLIB.
//
// Budget:
//
//   - All termination decisions go through a single Budget value
//     (function evaluations, wall-clock time, target length, context).
//   - Exhaustion is not an error: ShouldTerminate turns true and callers
//     return the best solution found so far, which the Evaluator already holds.
//
// Concurrency:
//
//   - An Instance is immutable after construction and may be shared.
//   - An Evaluator (and its *rand.Rand) belongs to exactly one run.
package objective
