package internal

import (
	"math"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// Validate performs several sanity checks on a triangulation of the given
// points, and returns nil if no issues were found. You normally shouldn't need
// to call this, but it is useful for debugging and testing. The rules are:
//
// 1. Every triangle is canonical, appears once, and has nonzero area.
// 2. The set of vertices equals the set of distinct input points.
// 3. No input point lies strictly inside any triangle's circumcircle.
// 4. The triangle areas sum to the area of the convex hull of the points.
func (list TriangleList) Validate(points []Point) error {
	inputs := make(PointSet, len(points))
	for i, p := range points {
		valid, err := NewPoint(p.X, p.Y)
		if err != nil {
			return &InvalidCoordinateError{Index: i, X: p.X, Y: p.Y}
		}
		inputs.Add(valid)
	}

	seen := make(map[Triangle]struct{}, len(list))
	vertices := make(PointSet, len(inputs))
	var area float64
	for _, t := range list {
		if NewTriangle(t.A, t.B, t.C) != t {
			return errors.Errorf("triangle %v is not in canonical form", t)
		}
		if _, ok := seen[t]; ok {
			return errors.Errorf("duplicate triangle %v", t)
		}
		seen[t] = struct{}{}

		if t.SignedArea() == 0 {
			return errors.Errorf("zero-area triangle %v", t)
		}
		area += t.Area()

		circle, err := t.Circumcircle()
		if err != nil {
			return err
		}
		for _, v := range t.Vertices() {
			if !inputs.Contains(v) {
				return errors.Errorf("vertex %v of %v is not an input point", v, t)
			}
			vertices.Add(v)
		}
		tolerance := Epsilon * math.Max(1, circle.Radius)
		for p := range inputs {
			if t.HasVertex(p) {
				continue
			}
			if Distance(circle.Center, p) < circle.Radius-tolerance {
				return errors.Errorf("point %v is inside the circumcircle of %v", p, t)
			}
		}
	}

	if !vertices.Equals(inputs) {
		return errors.Errorf("triangles use %d of %d input points", len(vertices), len(inputs))
	}

	hullArea := ConvexHullArea(points)
	if !Equal(hullArea, area) {
		return errors.Errorf("triangle area %v does not match convex hull area %v", area, hullArea)
	}
	return nil
}

// Area of the convex hull of the points. Zero when the points don't span an
// area.
//
// The shoelace sum behind Polygon.Area cancels badly far from the origin, so
// the hull is measured around the center of the points.
func ConvexHullArea(points []Point) float64 {
	if len(points) < 3 {
		return 0
	}
	center := boundingBoxCenter(points)
	coords := make([]geom.Coord, len(points))
	for i, p := range points {
		coords[i] = geom.Coord{p.X - center.X, p.Y - center.Y}
	}
	hull := xy.ConvexHull(geom.NewMultiPoint(geom.XY).MustSetCoords(coords))
	if polygon, ok := hull.(*geom.Polygon); ok {
		// Area is signed, and the hull ring winds clockwise
		return math.Abs(polygon.Area())
	}
	return 0
}
