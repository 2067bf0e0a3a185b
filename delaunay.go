// Delaunay triangulation of points in the plane.
//
// This package takes a set of points and splits their convex hull into
// triangles such that no point lies strictly inside any triangle's
// circumscribed circle. It uses the Bowyer-Watson incremental algorithm.
package delaunay

import "github.com/osuushi/delaunay/internal"

type Point = internal.Point
type Segment = internal.Segment
type Triangle = internal.Triangle
type Circle = internal.Circle
type TriangleList = internal.TriangleList
type Options = internal.Options

type InvalidCoordinateError = internal.InvalidCoordinateError
type DegenerateTriangleError = internal.DegenerateTriangleError

var (
	ErrInvalidCoordinate  = internal.ErrInvalidCoordinate
	ErrDegenerateTriangle = internal.ErrDegenerateTriangle
	ErrDegenerateInput    = internal.ErrDegenerateInput
	ErrSuperTriangleLimit = internal.ErrSuperTriangleLimit
)

// Make a point, failing if either coordinate is NaN or infinite.
func NewPoint(x, y float64) (Point, error) {
	return internal.NewPoint(x, y)
}

// Make a triangle. Vertex order doesn't matter; the same three points always
// give an equal Triangle.
func NewTriangle(a, b, c Point) Triangle {
	return internal.NewTriangle(a, b, c)
}

func Distance(a, b Point) float64 {
	return internal.Distance(a, b)
}

// Triangulate the points with default options.
//
// The order of the points only affects the path the algorithm takes, not the
// result, for points in general position. Exact duplicates are ignored. The
// result is sorted, so the same input always gives the same list.
func Triangulate(points ...Point) (TriangleList, error) {
	return TriangulateWithOptions(Options{}, points...)
}

func TriangulateWithOptions(opts Options, points ...Point) (result TriangleList, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Triangulate(points, opts), nil
}
