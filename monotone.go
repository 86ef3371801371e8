// A linear-time triangulator for strictly x-monotone polygons.
//
// This package takes the boundary of a simple, strictly x-monotone polygon,
// given counterclockwise, and produces the n-3 internal diagonals that split
// it into n-2 triangles, using the classic sweep over a monotone stack.
package monotone

import "github.com/1ym3k/monotone/internal"

type Point = internal.Point
type Diagonal = internal.Diagonal
type Triangle = internal.Triangle
type Triangulation = internal.Triangulation
type Ring = internal.Ring

// Error kinds returned by Triangulate; match with errors.Is.
var (
	ErrInvalidSize     = internal.ErrInvalidSize
	ErrDuplicateVertex = internal.ErrDuplicateVertex
	ErrInconsistent    = internal.ErrInconsistent
)

// Triangulate a strictly x-monotone polygon.
//
// The caller must supply the vertices in counterclockwise order, forming a
// simple boundary in which x is strictly monotone along each of the two
// chains between the leftmost and rightmost vertices. Those preconditions are
// not re-verified here beyond cheap structural checks (at least 3 vertices,
// no repeated coordinate); a violation that slips through surfaces as
// ErrInconsistent rather than a partial result.
//
// Vertex ids in the result are indices into points. The diagonal set is
// deterministic for a given input: sweep ties at equal x are broken by chain
// (lower before upper), then by y.
func Triangulate(points []Point) (result *Triangulation, err error) {
	defer func() {
		if recovered := internal.RecoverError(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	return internal.Triangulate(points), nil
}
