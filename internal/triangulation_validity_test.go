package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Helper to check that a triangulation is valid. On top of Validate, which
// covers the Delaunay property and the area of the hull:
// 1. Every triangle is counterclockwise.
// 2. The number of triangles matches Euler's formula for a triangulated point
// set: 2n - 2 - h, where h is the number of points on the hull boundary.
func AssertValidTriangulation(t *testing.T, points []Point, triangles TriangleList) {
	t.Helper()
	require.NoError(t, triangles.Validate(points))

	distinct := make(PointSet)
	for _, p := range points {
		distinct.Add(p)
	}

	for _, tri := range triangles {
		require.True(t, tri.IsCCW(), "clockwise triangle: %s", tri)
	}

	n := len(distinct)
	h := hullBoundaryCount(distinct)
	require.Len(t, triangles, 2*n-2-h, "unexpected triangle count for %d points with %d on the hull", n, h)
}

// Count the points lying on the boundary of their convex hull, including
// points in the middle of a hull edge.
func hullBoundaryCount(points PointSet) int {
	coords := make([]geom.Coord, 0, len(points))
	for p := range points {
		coords = append(coords, geom.Coord{p.X, p.Y})
	}
	hull := xy.ConvexHull(geom.NewMultiPoint(geom.XY).MustSetCoords(coords))
	polygon, ok := hull.(*geom.Polygon)
	if !ok {
		return len(points)
	}

	ring := polygon.LinearRing(0)
	corners := make([]Point, ring.NumCoords())
	for i := range corners {
		coord := ring.Coord(i)
		corners[i] = Point{coord.X(), coord.Y()}
	}

	count := 0
	for p := range points {
		for i, a := range corners {
			b := corners[CircularIndex(i+1, len(corners))]
			if onSegment(a, b, p) {
				count++
				break
			}
		}
	}
	return count
}

func onSegment(a, b, p Point) bool {
	return orientationSign(a, b, p) == 0 &&
		min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
