package internal

// Points are plain values. Exact equality is used everywhere a point, segment
// or triangle is a map key, so a point must never be nudged once it has been
// handed to the triangulation. The only normalization is -0 -> +0, which
// happens in NewPoint.
type Point struct {
	X float64
	Y float64
}

// An undirected edge. A always sorts before B (see Point.Less), so the same
// edge found from two neighboring triangles compares equal.
type Segment struct {
	A, B Point
}

// A is the smallest vertex, and A, B, C wind counterclockwise. Collinear
// triples have no winding, so they are simply sorted.
type Triangle struct {
	A, B, C Point
}

type Circle struct {
	Center Point
	Radius float64
}

// Working state of the engine. Each triangle carries its circumcircle, which
// is computed once when the triangle is added.
type TriangleSet map[Triangle]Circle

// Final result of a triangulation, sorted by Triangle.Less.
type TriangleList []Triangle

type PointSet map[Point]struct{}

// Counts how many times each edge appears among a group of triangles.
type SegmentCounts map[Segment]int
