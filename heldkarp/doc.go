// Package heldkarp implements an exact branch-and-bound TSP solver driven by
// the Held–Karp 1-tree relaxation.
//
// Every search node carries a set of excluded edges and a vector of Lagrange
// multipliers pi. Its lower bound is
//
//	L(pi) = cost'(T) − 2·Σ pi_i,   cost'(i,j) = d(i,j) + pi_i + pi_j
//
// where T is a minimum 1-tree on the pi-adjusted costs: the two cheapest edges
// at node 1 plus a minimum spanning tree (Prim, O(n²)) over the other nodes.
// Subgradient ascent moves pi towards degree 2 everywhere. A node whose
// 1-tree has no degree above two is a tour.
//
// Search:
//
//   - relax:  iterate 1-tree + subgradient step until the step multiplier
//     underflows, the degree violation vanishes, or the bound reaches the
//     incumbent.
//   - branch: pick the node with the smallest degree above two; create one
//     child excluding the edge to its tree parent and one child per tree
//     edge to its tree children.
//   - order:  dive into the cheapest child, park the siblings in a min-heap
//     keyed by bound, and return to the heap once the dive is pruned.
//
// Every 1-tree is also turned into a tour (pre-order walk of the spanning
// tree) and registered with the Objective, so the run's best-so-far improves
// long before the search proves optimality.
//
// Determinism: no randomness; ties are broken by node index.
//
// SolveDP is the classical Held-Karp dynamic program over subsets. It needs
// O(n·2ⁿ) memory, is limited to MaxDPNodes nodes and, unlike the
// branch and bound, also solves asymmetric instances.
//
// Budget: the Objective is polled after every relaxation step and every
// branch expansion. Exhaustion ends the search normally; Result.Optimal is
// then false.
package heldkarp
