package internal

// Point is a position on the plane. Coordinates are float64, but the
// orientation predicate is only trusted for coordinates of magnitude up to
// about 1e6; see Orient.
type Point struct {
	X float64
	Y float64
}

// Ring is the boundary of a polygon: a cyclic sequence of points in
// counterclockwise order. Vertices are identified by their index in Pts, and
// adjacency is index arithmetic modulo Len(). The ring is read-only once the
// triangulation pipeline starts.
type Ring struct {
	Pts []Point
}

func (r *Ring) Len() int {
	return len(r.Pts)
}

func (r *Ring) At(i int) Point {
	return r.Pts[i]
}

// Adjacent reports whether i and j are joined by a boundary edge.
func (r *Ring) Adjacent(i, j int) bool {
	n := len(r.Pts)
	return CircularIndex(i+1, n) == j || CircularIndex(j+1, n) == i
}

// Chain tags a vertex as belonging to the lower or upper boundary chain. The
// two x-extreme vertices terminate both chains; for sweep ordering and
// dispatch they are carried as ChainLower.
type Chain uint8

const (
	ChainLower Chain = iota
	ChainUpper
)

func (c Chain) String() string {
	if c == ChainLower {
		return "LOWER"
	}
	return "UPPER"
}

// Diagonal is an unordered pair of non-adjacent ring vertex ids. A and B are
// kept sorted so that equal diagonals compare equal and can be used as map
// keys.
type Diagonal struct {
	A, B int
}

func NewDiagonal(a, b int) Diagonal {
	if a > b {
		a, b = b, a
	}
	return Diagonal{A: a, B: b}
}

// Triangle is a counterclockwise triple of ring vertex ids.
type Triangle struct {
	A, B, C int
}

// event is a sweep event: a vertex id paired with its chain tag.
type event struct {
	V     int
	Chain Chain
}

type eventStack []event
