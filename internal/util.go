package internal

import "math"

// Epsilon is the tolerance band for orientation and area comparisons. Cross
// products smaller than this in magnitude are treated as collinear.
const Epsilon = 1e-9

// Turn is the result of the orientation predicate.
type Turn int

const (
	RightTurn Turn = -1
	Collinear Turn = 0
	LeftTurn  Turn = 1
)

// Cross returns the z-component of (b-a) x (c-a).
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Orient classifies the turn taken at b when walking a -> b -> c. This is the
// single geometric test the triangulator relies on. The result is exact for
// integer-valued coordinates up to about 1e6 in magnitude (the cross product
// then fits well within float64's 53-bit mantissa); near-collinear triples
// beyond the Epsilon band are classified conservatively as Collinear.
func Orient(a, b, c Point) Turn {
	cross := Cross(a, b, c)
	if cross > Epsilon {
		return LeftTurn
	}
	if cross < -Epsilon {
		return RightTurn
	}
	return Collinear
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// SignedArea is the shoelace sum of the ring: positive for counterclockwise
// boundaries.
func (r *Ring) SignedArea() float64 {
	var sum float64
	for i, p := range r.Pts {
		q := r.Pts[CircularIndex(i+1, len(r.Pts))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (r *Ring) IsCCW() bool {
	return r.SignedArea() > 0
}

// Contains is an even-odd raycast point-in-polygon test. It is provided
// primarily for testing; the triangulator itself never needs it.
func (r *Ring) Contains(p Point) bool {
	inside := false
	n := len(r.Pts)
	for i, a := range r.Pts {
		b := r.Pts[CircularIndex(i+1, n)]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if x > p.X {
				inside = !inside
			}
		}
	}
	return inside
}

// Reverse returns the ring with its orientation flipped.
func (r *Ring) Reverse() *Ring {
	rev := &Ring{Pts: make([]Point, 0, len(r.Pts))}
	for i := len(r.Pts) - 1; i >= 0; i-- {
		rev.Pts = append(rev.Pts, r.Pts[i])
	}
	return rev
}

// SignedArea of the triangle with respect to its ring.
func (t Triangle) SignedArea(r *Ring) float64 {
	return Cross(r.At(t.A), r.At(t.B), r.At(t.C)) / 2
}

func (t Triangle) IsCCW(r *Ring) bool {
	return t.SignedArea(r) > 0
}

func (t Triangle) Area(r *Ring) float64 {
	return math.Abs(t.SignedArea(r))
}

func (s *eventStack) Push(e event) {
	*s = append(*s, e)
}

func (s *eventStack) Pop() event {
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e
}

func (s *eventStack) Peek() event {
	return (*s)[len(*s)-1]
}

func (s *eventStack) Empty() bool {
	return len(*s) == 0
}
