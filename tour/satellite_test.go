package tour_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimizationBenchmarking/tspSuite-sub014/tour"
)

func TestSatelliteRoundTrip(t *testing.T) {
	for n := 1; n <= 12; n++ {
		p := randomPath(n, int64(n))
		l, err := tour.PathToSatellite(p)
		require.NoError(t, err)
		back, err := tour.SatelliteToPath(l, nil)
		require.NoError(t, err)
		require.Truef(t, tour.EqualCycles(p, back), "n=%d: %v vs %v", n, p, back)
	}
}

// TestSatelliteReverse_AllSegments reverses every segment [i..j] of a path
// and compares with the array reversal.
func TestSatelliteReverse_AllSegments(t *testing.T) {
	for n := 2; n <= 9; n++ {
		p := randomPath(n, 42+int64(n))
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				l, err := tour.PathToSatellite(p)
				require.NoError(t, err)

				before, after := p[(i-1+n)%n], p[(j+1)%n]
				require.NoError(t, l.Reverse(before, p[i], p[j], after))

				got, err := tour.SatelliteToPath(l, nil)
				require.NoError(t, err)

				want := append([]int(nil), p...)
				tour.Reverse(want, i, j)
				require.Truef(t, tour.EqualCycles(want, got), "n=%d i=%d j=%d: %v vs %v", n, i, j, want, got)
			}
		}
	}
}

func TestSatelliteList_ConnectDisconnect(t *testing.T) {
	l := tour.NewSatelliteList(3)
	require.NoError(t, l.Connect(1, 2))
	require.NoError(t, l.Connect(2, 3))
	require.NoError(t, l.Connect(3, 1))
	require.ErrorIs(t, l.Connect(1, 2), tour.ErrDegreeOverflow)

	assert.True(t, l.IsConnected(1, 3))
	assert.Equal(t, 3, l.Other(2, 1))
	assert.Equal(t, 1, l.Other(2, 3))

	require.NoError(t, l.Disconnect(1, 3))
	assert.False(t, l.IsConnected(3, 1))
	require.ErrorIs(t, l.Disconnect(1, 3), tour.ErrNotConnected)

	_, err := tour.SatelliteToPath(l, nil)
	require.ErrorIs(t, err, tour.ErrMalformedTour)
}

func TestSatelliteList_LoadRejectsBadPath(t *testing.T) {
	l := tour.NewSatelliteList(4)
	require.ErrorIs(t, l.LoadPath([]int{1, 2, 2, 4}), tour.ErrMalformedTour)
	require.ErrorIs(t, l.Reverse(1, 2, 3, 4), tour.ErrNotConnected)
}

func TestSatelliteList_CopyFrom(t *testing.T) {
	src, err := tour.PathToSatellite([]int{4, 2, 1, 3})
	require.NoError(t, err)
	dst := tour.NewSatelliteList(4)
	dst.CopyFrom(src)

	got, err := dst.AppendPath(nil)
	require.NoError(t, err)
	assert.True(t, tour.EqualCycles([]int{4, 2, 1, 3}, got))
}
