package internal

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	colorful "github.com/lucasb-eyer/go-colorful"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/1ym3k/monotone/internal/dbg"
)

// Debugging helpers: render a triangulation to a PNG and print it inline
// (iTerm only). Each triangle gets a hue from an HSV ramp and a readable name
// at its centroid.

// Padding around the shape so diagonals near the hull stay legible.
const dbgDrawPadding = 40

// DbgDraw renders the triangulation at the given scale, saves it to /tmp, and
// cats it to stdout.
func (t *Triangulation) DbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range t.Ring.Pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	triangles := t.Triangles()
	for i, tri := range triangles {
		hue := 360 * float64(i) / float64(len(triangles))
		fill := colorful.Hsv(hue, 0.5, 0.6)
		c.MoveTo(t.Ring.At(tri.A).X, t.Ring.At(tri.A).Y)
		c.LineTo(t.Ring.At(tri.B).X, t.Ring.At(tri.B).Y)
		c.LineTo(t.Ring.At(tri.C).X, t.Ring.At(tri.C).Y)
		c.ClosePath()
		c.SetRGB(fill.R, fill.G, fill.B)
		c.Fill()
	}

	c.SetLineWidth(2)
	c.SetRGB(0, 1, 1)
	for _, d := range t.Diagonals {
		c.DrawLine(t.Ring.At(d.A).X, t.Ring.At(d.A).Y, t.Ring.At(d.B).X, t.Ring.At(d.B).Y)
		c.Stroke()
	}
	c.SetRGB(1, 1, 1)
	c.MoveTo(t.Ring.At(0).X, t.Ring.At(0).Y)
	for _, p := range t.Ring.Pts[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()

	for _, tri := range triangles {
		cx := (t.Ring.At(tri.A).X + t.Ring.At(tri.B).X + t.Ring.At(tri.C).X) / 3
		cy := (t.Ring.At(tri.A).Y + t.Ring.At(tri.B).Y + t.Ring.At(tri.C).Y) / 3
		c.Push()
		c.Identity()
		// Undo the flip for text; gg draws strings in device space here.
		sx := dbgDrawPadding + scale*(cx-minX)
		sy := float64(height) - (dbgDrawPadding + scale*(cy-minY))
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(tri), sx, sy, 0.5, 0.5)
		c.Pop()
		fmt.Println(tri.DbgName(t.Ring))
	}

	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}

// DbgName is the triangle's readable name, colored by its shape class: green
// for a healthy CCW triangle, red for a degenerate sliver, cyan for a
// clockwise one (which should never come out of a valid run).
func (tri Triangle) DbgName(ring *Ring) string {
	name := dbg.Name(tri)
	switch {
	case math.Abs(tri.SignedArea(ring)) < Epsilon:
		name = aurora.Red(name).String()
	case tri.IsCCW(ring):
		name = aurora.Green(name).String()
	default:
		name = aurora.Cyan(name).String()
	}
	return name
}
