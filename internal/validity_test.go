package internal

// This contains no actual tests. It is just a helper for checking that a
// triangulation is valid. The rules are:
// 1. There are exactly n-3 diagonals, each joining non-adjacent ring vertices.
// 2. No diagonal crosses another diagonal or a boundary edge.
// 3. Every diagonal's midpoint is inside the polygon.
// 4. The implied triangles number n-2, are all counterclockwise, and their
//    areas sum to the polygon's area.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func AssertValidTriangulation(t *testing.T, tri *Triangulation) {
	t.Helper()
	ring := tri.Ring
	n := ring.Len()

	require.True(t, ring.IsCCW(), "ring is not counterclockwise")
	require.Len(t, tri.Diagonals, n-3, "diagonal count must be n-3")

	for _, d := range tri.Diagonals {
		require.Less(t, d.A, d.B, "diagonal %v is not normalized", d)
		require.GreaterOrEqual(t, d.A, 0, "diagonal %v out of range", d)
		require.Less(t, d.B, n, "diagonal %v out of range", d)
		require.False(t, ring.Adjacent(d.A, d.B), "diagonal %v coincides with a boundary edge", d)

		mid := Point{
			X: (ring.At(d.A).X + ring.At(d.B).X) / 2,
			Y: (ring.At(d.A).Y + ring.At(d.B).Y) / 2,
		}
		require.True(t, ring.Contains(mid), "diagonal %v leaves the polygon interior", d)
	}

	for i, d := range tri.Diagonals {
		for _, e := range tri.Diagonals[i+1:] {
			require.False(t, diagonalsCross(ring, d.A, d.B, e.A, e.B),
				"diagonals %v and %v cross", d, e)
		}
		for j := 0; j < n; j++ {
			k := CircularIndex(j+1, n)
			require.False(t, diagonalsCross(ring, d.A, d.B, j, k),
				"diagonal %v crosses boundary edge %d-%d", d, j, k)
		}
	}

	triangles := tri.Triangles()
	require.Len(t, triangles, n-2, "triangle count must be n-2")
	var areaSum float64
	for _, face := range triangles {
		require.True(t, face.IsCCW(ring), "clockwise triangle %v", face)
		areaSum += face.Area(ring)
	}
	require.InDelta(t, tri.Area(), areaSum, 1e-6,
		"triangle areas must sum to the polygon area")
}

// diagonalsCross reports a proper crossing between segments a-b and c-d,
// ignoring pairs that share an endpoint.
func diagonalsCross(ring *Ring, a, b, c, d int) bool {
	if a == c || a == d || b == c || b == d {
		return false
	}
	pa, pb := ring.At(a), ring.At(b)
	pc, pd := ring.At(c), ring.At(d)
	o1 := Orient(pa, pb, pc)
	o2 := Orient(pa, pb, pd)
	o3 := Orient(pc, pd, pa)
	o4 := Orient(pc, pd, pb)
	return o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear &&
		o1 != o2 && o3 != o4
}
