package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1ym3k/monotone"
)

func TestWriteSVG(t *testing.T) {
	tri, err := monotone.Triangulate([]monotone.Point{
		{X: 0, Y: 0}, {X: 2, Y: -1}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 2, Y: 4}, {X: 0, Y: 3},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSVG(&buf, tri, 10)
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	// 4 triangles plus the boundary outline.
	assert.Equal(t, 5, strings.Count(out, "<polygon"))
	// One dashed line per diagonal.
	assert.Equal(t, 3, strings.Count(out, "<line"))
	// One dot per vertex.
	assert.Equal(t, 6, strings.Count(out, "<circle"))
}
