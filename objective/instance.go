// Package objective - immutable problem instances.
//
// An Instance stores the full distance matrix densely (row-major, 0-based
// internally) so that Distance is a single slice read. Planar instances also
// keep their coordinates; candidate.AllocatePlanar uses them for spatial
// nearest-neighbor queries.
package objective

import (
	"fmt"
	"math"
)

// Instance is an immutable symmetric or asymmetric TSP instance.
type Instance struct {
	name      string
	n         int
	dist      []int64      // dist[(a-1)*n+(b-1)]
	points    [][2]float64 // nil unless planar
	symmetric bool
}

// NewInstance builds an instance from a square distance matrix whose row i
// holds the distances from node i+1.
//
// Contracts:
//   - len(rows) ≥ 2 and every row has len(rows) entries;
//   - the diagonal is zero and off-diagonal entries are non-negative.
//
// Complexity: O(n²) time and memory.
func NewInstance(name string, rows [][]int64) (*Instance, error) {
	n := len(rows)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 nodes, got %d", ErrInvalidInstance, n)
	}

	in := &Instance{name: name, n: n, dist: make([]int64, n*n), symmetric: true}

	var (
		i, j int
		x    int64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInstance, i+1, len(rows[i]), n)
		}
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if i == j && x != 0 {
				return nil, fmt.Errorf("%w: non-zero diagonal at node %d", ErrInvalidInstance, i+1)
			}
			if x < 0 {
				return nil, fmt.Errorf("%w: negative distance %d→%d", ErrInvalidInstance, i+1, j+1)
			}
			in.dist[i*n+j] = x
		}
	}
	for i = 0; i < n && in.symmetric; i++ {
		for j = i + 1; j < n; j++ {
			if in.dist[i*n+j] != in.dist[j*n+i] {
				in.symmetric = false
				break
			}
		}
	}

	return in, nil
}

// NewPlanar builds a symmetric instance from points in the plane using the
// TSPLIB EUC_2D metric: d = nint(sqrt(dx² + dy²)). Node i+1 sits at points[i].
//
// Complexity: O(n²).
func NewPlanar(name string, points [][2]float64) (*Instance, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidInstance, n)
	}

	in := &Instance{
		name:      name,
		n:         n,
		dist:      make([]int64, n*n),
		points:    make([][2]float64, n),
		symmetric: true,
	}
	copy(in.points, points)

	var (
		i, j   int
		dx, dy float64
		d      int64
	)
	for i = 0; i < n; i++ {
		if math.IsNaN(points[i][0]) || math.IsNaN(points[i][1]) ||
			math.IsInf(points[i][0], 0) || math.IsInf(points[i][1], 0) {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrInvalidInstance, i+1)
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = points[i][0] - points[j][0]
			dy = points[i][1] - points[j][1]
			d = int64(math.Floor(math.Sqrt(dx*dx+dy*dy) + 0.5))
			in.dist[i*n+j] = d
			in.dist[j*n+i] = d
		}
	}

	return in, nil
}

// RandomPlanar places n points uniformly in the square [0, side)² using a
// deterministic stream derived from seed and returns the EUC_2D instance.
func RandomPlanar(n int, seed int64, side float64) (*Instance, error) {
	if side <= 0 {
		side = 1000
	}
	rng := NewRand(seed)
	points := make([][2]float64, n)
	var i int
	for i = 0; i < n; i++ {
		points[i] = [2]float64{rng.Float64() * side, rng.Float64() * side}
	}

	return NewPlanar(fmt.Sprintf("rand%d-%d", n, seed), points)
}

// Name returns the instance name.
func (in *Instance) Name() string { return in.name }

// N returns the number of nodes.
func (in *Instance) N() int { return in.n }

// Symmetric reports whether d(a,b) == d(b,a) for all node pairs.
func (in *Instance) Symmetric() bool { return in.symmetric }

// Distance returns d(a,b) for node ids a, b ∈ 1..n.
func (in *Instance) Distance(a, b int) int64 {
	return in.dist[(a-1)*in.n+(b-1)]
}

// Points returns the coordinates (points[v-1] for node v), or nil if the
// instance is not planar. The slice must not be modified.
func (in *Instance) Points() [][2]float64 { return in.points }

// Length returns the length of the closed tour described by path without
// counting an evaluation. The path is not validated.
//
// Complexity: O(n).
func (in *Instance) Length(path []int) int64 {
	var (
		total int64
		i     int
		last  = len(path) - 1
	)
	if last < 0 {
		return 0
	}
	for i = 0; i < last; i++ {
		total += in.Distance(path[i], path[i+1])
	}

	return total + in.Distance(path[last], path[0])
}
