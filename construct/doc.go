// Package construct builds starting tours for the local searches.
//
// Christofides follows the classical pipeline on the complete graph:
//
//  1. Minimum spanning tree (Prim, O(n²)).
//  2. Perfect matching on the odd-degree vertices of the tree.
//  3. Eulerian circuit of the tree plus matching (Hierholzer, O(n)).
//  4. Shortcut of the circuit to a Hamiltonian cycle (skip revisits).
//
// The matching is greedy: each unmatched odd vertex, in index order, takes
// its nearest unmatched partner. The result is always a valid tour, but the
// 1.5·OPT guarantee of a minimum-weight matching does not hold.
//
// NearestNeighbor grows a path from a start node, always moving to the
// closest unvisited node.
//
// Both heuristics are deterministic (ties go to the smaller node id) and
// read distances through Distancer, so an objective.Instance can be passed
// directly without counting evaluations.
package construct
