// Package render serializes a triangulation as an SVG drawing. The core has
// no opinion about output; this is one consumer of its immutable result.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/1ym3k/monotone"
)

const (
	padding = 20

	boundaryStyle = "fill:none;stroke:rgb(30,30,30);stroke-width:2"
	diagonalStyle = "stroke:rgb(255,255,255);stroke-width:1;stroke-dasharray:4 2"
	vertexStyle   = "fill:rgb(200,30,30)"
)

// WriteSVG renders the triangulation at the given scale: each triangle filled
// with a hue from an HSV ramp, diagonals dashed on top, the boundary
// outlined, and vertices dotted. The y axis is flipped so the drawing matches
// the usual mathematical orientation.
func WriteSVG(w io.Writer, t *monotone.Triangulation, scale float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range t.Ring.Pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + 2*padding
	height := int(scale*(maxY-minY)) + 2*padding
	toScreen := func(p monotone.Point) (int, int) {
		x := padding + scale*(p.X-minX)
		y := float64(height) - (padding + scale*(p.Y-minY))
		return int(math.Round(x)), int(math.Round(y))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(245,245,245)")

	triangles := t.Triangles()
	for i, tri := range triangles {
		hue := 360 * float64(i) / float64(len(triangles))
		fill := colorful.Hsv(hue, 0.45, 0.85)
		xs := make([]int, 0, 3)
		ys := make([]int, 0, 3)
		for _, v := range []int{tri.A, tri.B, tri.C} {
			x, y := toScreen(t.Ring.At(v))
			xs = append(xs, x)
			ys = append(ys, y)
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:none", fill.Hex()))
	}

	for _, d := range t.Diagonals {
		x1, y1 := toScreen(t.Ring.At(d.A))
		x2, y2 := toScreen(t.Ring.At(d.B))
		canvas.Line(x1, y1, x2, y2, diagonalStyle)
	}

	xs := make([]int, 0, t.Ring.Len())
	ys := make([]int, 0, t.Ring.Len())
	for _, p := range t.Ring.Pts {
		x, y := toScreen(p)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	canvas.Polygon(xs, ys, boundaryStyle)

	for i := range t.Ring.Pts {
		x, y := toScreen(t.Ring.At(i))
		canvas.Circle(x, y, 3, vertexStyle)
	}
	canvas.End()
}
