package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs rings. It is not a full (or
// even correct) svg consumer: it parses the SVG, finds the single polygon
// element, and converts it into a CCW *Ring. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each must be a simple, strictly x-monotone polygon; winding does not
// matter, the loader normalizes to CCW.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Ring {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	var points []Point
	for _, pair := range strings.Fields(pointString) {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pair, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}

	ring := &Ring{Pts: points}
	if !ring.IsCCW() {
		ring = ring.Reverse()
	}
	return ring
}
