package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/1ym3k/monotone"
	"github.com/1ym3k/monotone/render"
)

// Triangulates an x-monotone polygon read from a text file (or stdin with
// "-"). The format is the number of vertices on the first line, then one
// "x y" pair per line, counterclockwise. Prints the diagonals, one per line,
// as (x,y)(x,y) pairs in a normalized order; optionally writes an SVG
// rendering or draws the result inline (iTerm only).
var (
	input   = kingpin.Arg("input", "polygon file, or - for stdin").Required().String()
	svgOut  = kingpin.Flag("svg", "write an SVG rendering to PATH").PlaceHolder("PATH").String()
	scale   = kingpin.Flag("scale", "pixels per coordinate unit for renderings").Default("40").Float64()
	preview = kingpin.Flag("preview", "draw the triangulation inline in the terminal").Bool()
)

func main() {
	kingpin.Parse()

	points, err := readPolygon(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	result, err := monotone.Triangulate(points)
	if err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
		os.Exit(1)
	}

	fmt.Printf("%s: %d vertices, %d diagonals, %d triangles, area %s\n",
		aurora.Green("triangulated"),
		len(points),
		len(result.Diagonals),
		len(result.Triangles()),
		aurora.Bold(formatCoord(result.Area())),
	)
	for _, d := range sortedDiagonals(result) {
		a, b := result.Ring.At(d.A), result.Ring.At(d.B)
		fmt.Printf("(%s,%s)(%s,%s)\n",
			formatCoord(a.X), formatCoord(a.Y), formatCoord(b.X), formatCoord(b.Y))
	}

	if *svgOut != "" {
		if err := writeSVG(*svgOut, result, *scale); err != nil {
			fmt.Fprintln(os.Stderr, aurora.Red(err.Error()))
			os.Exit(1)
		}
		fmt.Printf("%s %s\n", aurora.Green("wrote"), *svgOut)
	}

	if *preview {
		result.DbgDraw(*scale)
	}
}

func readPolygon(path string) ([]monotone.Point, error) {
	var in io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		in = file
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return nil, fmt.Errorf("%s: empty input", path)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("%s: bad vertex count %q", path, scanner.Text())
	}

	points := make([]monotone.Point, 0, n)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s: bad point line %q", path, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad x value %q", path, fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad y value %q", path, fields[1])
		}
		points = append(points, monotone.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) != n {
		return nil, fmt.Errorf("%s: expected %d points, read %d", path, n, len(points))
	}
	return points, nil
}

// Diagonals in reporting order: each pair with its lexicographically smaller
// endpoint first, the list sorted by first endpoint, then second.
func sortedDiagonals(t *monotone.Triangulation) []monotone.Diagonal {
	diagonals := make([]monotone.Diagonal, len(t.Diagonals))
	copy(diagonals, t.Diagonals)
	lexLess := func(a, b monotone.Point) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	}
	for i, d := range diagonals {
		if lexLess(t.Ring.At(d.B), t.Ring.At(d.A)) {
			diagonals[i] = monotone.Diagonal{A: d.B, B: d.A}
		}
	}
	sort.Slice(diagonals, func(i, j int) bool {
		pa, pb := t.Ring.At(diagonals[i].A), t.Ring.At(diagonals[j].A)
		if pa != pb {
			return lexLess(pa, pb)
		}
		return lexLess(t.Ring.At(diagonals[i].B), t.Ring.At(diagonals[j].B))
	})
	return diagonals
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeSVG(path string, t *monotone.Triangulation, scale float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	render.WriteSVG(file, t, scale)
	return nil
}
