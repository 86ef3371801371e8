package monotone

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.

func TestTriangulate(t *testing.T) {
	tri, err := Triangulate([]Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	})
	require.NoError(t, err)
	assert.Len(t, tri.Diagonals, 1)
	assert.Len(t, tri.Triangles(), 2)
}

func TestTriangulate_TriangleHasNoDiagonals(t *testing.T) {
	tri, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 3}})
	require.NoError(t, err)
	assert.Empty(t, tri.Diagonals)
}

func TestTriangulate_InvalidSize(t *testing.T) {
	tri, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Nil(t, tri)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestTriangulate_DuplicateVertex(t *testing.T) {
	tri, err := Triangulate([]Point{
		{X: 0, Y: 0},
		{X: 2, Y: -1},
		{X: 4, Y: 0},
		{X: 2, Y: -1},
	})
	assert.Nil(t, tri)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateVertex))
}
