// Package candidate provides precomputed "m nearest neighbors per node"
// candidate sets and compact per-candidate-edge value stores.
//
// A Set answers two questions in O(1) / O(log m):
//
//   - Candidate(v, id): the id-th candidate of v, id ∈ 1..M (the pseudo-id).
//   - PseudoID(v, u):   the pseudo-id of u in v's list, or NotCandidate.
//
// Allocate returns a Proxy (pure arithmetic, every other node is a
// candidate) when m ≤ 0 or m ≥ n−1, and a SubSet otherwise. A SubSet stores
// all lists in one flat []int32 of n·m entries; each row is sorted by node id
// so that PseudoID is a binary search. AllocatePlanar builds the same SubSet
// from coordinates through an R-tree nearest-neighbor scan.
//
// EdgeNumber stores one number per candidate edge (O(n·m) instead of
// O(n²)) in the narrowest numeric type able to hold the declared value
// range. Writes to edges that are candidates of neither endpoint are
// silently dropped and such edges always read as zero: this loss of
// information is the price of the memory savings and is never upgraded to
// dense storage behind the caller's back.
package candidate
