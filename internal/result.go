package internal

import (
	"math"
	"sort"
)

// Triangulation is the immutable result of a run: the input ring plus the n-3
// internal diagonals that partition it into n-2 triangles.
type Triangulation struct {
	Ring      *Ring
	Diagonals []Diagonal
}

// Assemble normalizes and deduplicates the emitted diagonals and validates
// the n-3 count. A count mismatch means a precondition slipped past the
// loader (or a defect), and is surfaced hard rather than trimmed or padded.
func Assemble(ring *Ring, diagonals []Diagonal) *Triangulation {
	seen := make(map[Diagonal]struct{}, len(diagonals))
	deduped := make([]Diagonal, 0, len(diagonals))
	for _, d := range diagonals {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		deduped = append(deduped, d)
	}

	if want := ring.Len() - 3; len(deduped) != want {
		fatalf(ErrInconsistent, "expected %d diagonals for %d vertices, got %d",
			want, ring.Len(), len(deduped))
	}

	return &Triangulation{Ring: ring, Diagonals: deduped}
}

// Triangles derives the n-2 counterclockwise triangles implied by the
// boundary edges plus the diagonals, by walking the faces of the planar
// graph. Each directed edge borders exactly one face on its left; the
// clockwise face is the outside and is skipped. Any other face that is not a
// triangle means the diagonal set was invalid.
func (t *Triangulation) Triangles() []Triangle {
	n := t.Ring.Len()

	adj := make([][]int, n)
	addEdge := func(a, b int) {
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for i := 0; i < n; i++ {
		addEdge(i, CircularIndex(i+1, n))
	}
	for _, d := range t.Diagonals {
		addEdge(d.A, d.B)
	}

	// Sort each vertex's neighbors counterclockwise by angle, and index them
	// for O(1) lookup during the walk.
	pos := make([]map[int]int, n)
	for v := range adj {
		p := t.Ring.At(v)
		sort.Slice(adj[v], func(i, j int) bool {
			return angleTo(p, t.Ring.At(adj[v][i])) < angleTo(p, t.Ring.At(adj[v][j]))
		})
		pos[v] = make(map[int]int, len(adj[v]))
		for i, w := range adj[v] {
			pos[v][w] = i
		}
	}

	// Walk the face on the left of each unvisited directed edge: arriving at
	// cv from cu, the next edge leaves toward the neighbor just clockwise of
	// cu around cv.
	visited := make(map[[2]int]bool, 4*n)
	faceOf := func(u, v int) []int {
		var face []int
		cu, cv := u, v
		for {
			visited[[2]int{cu, cv}] = true
			face = append(face, cu)
			i := pos[cv][cu]
			deg := len(adj[cv])
			cu, cv = cv, adj[cv][CircularIndex(i-1, deg)]
			if cu == u && cv == v {
				return face
			}
		}
	}

	triangles := make([]Triangle, 0, n-2)
	for u := range adj {
		for _, v := range adj[u] {
			if visited[[2]int{u, v}] {
				continue
			}
			face := faceOf(u, v)
			if len(face) == 3 {
				tri := Triangle{face[0], face[1], face[2]}
				if tri.IsCCW(t.Ring) {
					triangles = append(triangles, tri)
					continue
				}
			}
			if isOuterFace(t.Ring, face) {
				continue
			}
			fatalf(ErrInconsistent, "face %v is not a triangle", face)
		}
	}

	if len(triangles) != n-2 {
		fatalf(ErrInconsistent, "expected %d triangles for %d vertices, got %d",
			n-2, n, len(triangles))
	}
	return triangles
}

// Area is the polygon's area by the shoelace formula. For a valid result it
// equals the summed area of Triangles().
func (t *Triangulation) Area() float64 {
	return math.Abs(t.Ring.SignedArea())
}

func angleTo(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// The outer face traverses the whole boundary clockwise.
func isOuterFace(ring *Ring, face []int) bool {
	if len(face) != ring.Len() {
		return false
	}
	var sum float64
	for i, v := range face {
		w := face[CircularIndex(i+1, len(face))]
		sum += ring.At(v).X*ring.At(w).Y - ring.At(w).X*ring.At(v).Y
	}
	return sum < 0
}
