package heldkarp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimizationBenchmarking/tspSuite-sub014/objective"
)

func newTestEngine(t *testing.T, n int, seed int64) *engine {
	t.Helper()
	in, err := objective.RandomPlanar(n, seed, 1000)
	require.NoError(t, err)
	ev, err := objective.New(in, objective.Options{})
	require.NoError(t, err)

	return newEngine(ev, DefaultOptions())
}

// violatingRoot returns a relaxed root whose 1-tree is not a tour.
func violatingRoot(t *testing.T, n int) (*engine, *node, int) {
	t.Helper()
	for seed := int64(1); seed <= 200; seed++ {
		e := newTestEngine(t, n, seed)
		root := newRoot(n)
		e.relax(root)
		if v := root.branchVertex(); v >= 0 {
			return e, root, v
		}
	}
	t.Fatal("no instance with a violating root 1-tree")

	return nil, nil, -1
}

func TestOneTree_DegreesAndEdgeCount(t *testing.T) {
	e := newTestEngine(t, 25, 4)
	nd := newRoot(25)
	e.oneTree(nd)

	sum := 0
	for v, d := range nd.degree {
		require.GreaterOrEqual(t, d, 1, "node %d", v)
		sum += d
	}
	assert.Equal(t, 2*25, sum, "a 1-tree has n edges")
	assert.Equal(t, 2, nd.degree[0])
	assert.Equal(t, 0, nd.parent[e.first])
}

func TestChildBoundsNeverDecrease(t *testing.T) {
	var checked int
	for seed := int64(1); seed <= 20; seed++ {
		e := newTestEngine(t, 16, seed)
		e.onChild = func(parent, child *node) {
			checked++
			assert.GreaterOrEqual(t, child.bound, parent.bound)
		}
		e.search()
	}
	assert.Positive(t, checked)
}

// Branching excludes, at the chosen vertex v, the edge to its tree parent
// and one edge per tree child. This follows the classical formulation
// as-is and is pinned here so that a change of rule is deliberate.
func TestBranch_ExcludesParentAndChildEdges(t *testing.T) {
	e, root, v := violatingRoot(t, 16)

	want := [][2]int{{v, root.parent[v]}}
	for u := range root.parent {
		if root.parent[u] == v {
			want = append(want, [2]int{v, u})
		}
	}
	assert.Len(t, want, root.degree[v])

	kids := e.branch(root, v, nil)
	require.Len(t, kids, len(want))

	for k, kid := range kids {
		i, j := want[k][0], want[k][1]
		assert.True(t, kid.excluded[i][j])
		assert.True(t, kid.excluded[j][i])

		var marked int
		for a := range kid.excluded {
			for b := range kid.excluded[a] {
				if kid.excluded[a][b] {
					marked++
				}
			}
			if a != i && a != j {
				assert.Same(t, &root.excluded[a][0], &kid.excluded[a][0], "row %d is shared", a)
			}
		}
		assert.Equal(t, 2, marked)
		assert.GreaterOrEqual(t, kid.bound, root.bound)
	}

	// The parent is left untouched.
	for a := range root.excluded {
		for b := range root.excluded[a] {
			assert.False(t, root.excluded[a][b])
		}
	}
}

func TestSearch_RegistersEveryImprovement(t *testing.T) {
	in, err := objective.NewPlanar("square", [][2]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {5, -3}})
	require.NoError(t, err)
	ev, err := objective.New(in, objective.Options{})
	require.NoError(t, err)

	e := newEngine(ev, DefaultOptions())
	res := e.search()
	assert.True(t, res.Optimal)
	assert.Equal(t, in.Length(res.Tour), res.Length)
	assert.Equal(t, res.Length, ev.LogPoint().BestLength)
}
