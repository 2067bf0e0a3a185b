package internal

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Compute the Delaunay triangulation of a set of points with the Bowyer-Watson
// algorithm:
//
// 1. Build a super-triangle that contains every point.
// 2. Insert the points one at a time. Each insertion removes every triangle
// whose circumcircle contains the new point, leaving a star-shaped cavity, and
// then fans new triangles out from the point to the cavity's boundary edges.
// 3. Throw away everything still attached to the super-triangle.
//
// All of this happens in a frame centered on the input (see localFrame), and
// the result is mapped back onto the input points at the end.
//
// Like the rest of this package, failures panic with a TriangulateError. The
// public API recovers them.
func Triangulate(points []Point, opts Options) TriangleList {
	opts = opts.withDefaults()
	points = prepareInput(points, opts)
	frame, local := newLocalFrame(points)
	opts.Logger.Debug("centered input", "offset", frame.offset)

	// Report degenerate triangles in the caller's coordinates
	defer func() {
		if r := recover(); r != nil {
			var degenerate *DegenerateTriangleError
			if err, ok := r.(error); ok && errors.As(err, &degenerate) {
				degenerate.Triangle = frame.triangleToWorld(degenerate.Triangle)
			}
			panic(r)
		}
	}()

	super, err := newSuperTriangle(local, opts)
	if err != nil {
		throw(err)
	}

	triangles := make(TriangleSet)
	addTriangle(triangles, super, super.Triangle)
	for _, p := range local {
		insertPoint(triangles, super, p, opts)
	}

	removeSuperTriangle(triangles, super.Triangle, opts)
	if len(triangles) == 0 {
		throw(errors.Wrap(ErrDegenerateInput, "no triangles left after removing the super-triangle"))
	}
	return frame.triangulationToWorld(triangles.List())
}

// Validate every point, and drop exact duplicates while keeping the input
// order. There must be at least three distinct points, and they can't all lie
// on one line.
func prepareInput(points []Point, opts Options) []Point {
	seen := make(PointSet, len(points))
	result := make([]Point, 0, len(points))
	for i, p := range points {
		valid, err := NewPoint(p.X, p.Y)
		if err != nil {
			throw(&InvalidCoordinateError{Index: i, X: p.X, Y: p.Y})
		}
		if seen.Contains(valid) {
			opts.Logger.Debug("skipping duplicate point", "index", i, "point", valid)
			continue
		}
		seen.Add(valid)
		result = append(result, valid)
	}

	if len(result) < 3 {
		throw(errors.Wrapf(ErrDegenerateInput, "need at least 3 distinct points, got %d", len(result)))
	}

	// The first two points are distinct, so they define a line. If any other
	// point is off that line, the input has area.
	for _, p := range result[2:] {
		if orientationSign(result[0], result[1], p) != 0 {
			return result
		}
	}
	throw(errors.Wrapf(ErrDegenerateInput, "all %d points are collinear", len(result)))
	return nil
}

// Add a triangle to the working set, failing if it is flat. Triangles with a
// super-triangle vertex have no finite circumcircle, and get a zero Circle.
func addTriangle(triangles TriangleSet, super superTriangle, t Triangle) {
	if super.touches(t) {
		if super.orientationSign(t) == 0 {
			throw(&DegenerateTriangleError{Triangle: t})
		}
		triangles[t] = Circle{}
		return
	}
	if orientationSign(t.A, t.B, t.C) == 0 {
		throw(&DegenerateTriangleError{Triangle: t})
	}
	triangles.Add(t)
}

// Whether inserting p invalidates t. The boundary counts as inside.
func invalidates(super superTriangle, t Triangle, p Point) bool {
	if super.touches(t) {
		return super.inCircumcircle(t, p)
	}
	return t.InCircumcircle(p)
}

func insertPoint(triangles TriangleSet, super superTriangle, p Point, opts Options) {
	invalidated := findInvalidated(triangles, super, p, opts.Workers)
	if len(invalidated) == 0 {
		// The super-triangle guarantees some triangle contains the point, and
		// that triangle's circumcircle contains it too.
		fatalf("no circumcircle contains %v", p)
	}

	// An edge shared by two invalidated triangles is inside the cavity. Edges
	// that appear only once form the cavity's boundary. The counting is done
	// over the whole invalidated set, never per partition.
	counts := make(SegmentCounts)
	for _, t := range invalidated {
		counts.AddEdges(t)
	}

	for _, t := range invalidated {
		if opts.debugEnabled() {
			opts.Logger.Debug("invalidated", "triangle", t.DbgName(), "circle", triangles[t], "point", p)
		}
		triangles.Remove(t)
	}

	added := 0
	for edge, count := range counts {
		if count != 1 {
			continue
		}
		// A point on the line of a boundary edge would make a flat triangle,
		// which addTriangle reports as a DegenerateTriangleError.
		addTriangle(triangles, super, NewTriangle(p, edge.A, edge.B))
		added++
	}

	opts.Logger.Debug("inserted point",
		"point", p,
		"invalidated", len(invalidated),
		"added", added,
		"triangles", len(triangles),
	)
}

// Find all the triangles whose circumcircle contains the point. With more than
// one worker, the set is split into chunks that are scanned concurrently, and
// the results are concatenated.
func findInvalidated(triangles TriangleSet, super superTriangle, p Point, workers int) []Triangle {
	if workers < 2 || len(triangles) < 2*workers {
		var result []Triangle
		for t := range triangles {
			if invalidates(super, t, p) {
				result = append(result, t)
			}
		}
		return result
	}

	entries := make([]Triangle, 0, len(triangles))
	for t := range triangles {
		entries = append(entries, t)
	}

	chunkSize := (len(entries) + workers - 1) / workers
	partitions := make([][]Triangle, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunkSize
		if lo >= len(entries) {
			break
		}
		hi := min(lo+chunkSize, len(entries))
		g.Go(func() error {
			for _, t := range entries[lo:hi] {
				if invalidates(super, t, p) {
					partitions[w] = append(partitions[w], t)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		throw(err)
	}

	var result []Triangle
	for _, partition := range partitions {
		result = append(result, partition...)
	}
	return result
}

// Remove every triangle attached to the super-triangle, either by sharing one
// of its edges or one of its vertices.
func removeSuperTriangle(triangles TriangleSet, super Triangle, opts Options) {
	removed := 0
	for t := range triangles {
		if touchesSuperTriangle(t, super) {
			triangles.Remove(t)
			removed++
		}
	}
	opts.Logger.Debug("removed super-triangle", "removed", removed, "remaining", len(triangles))
}

func touchesSuperTriangle(t, super Triangle) bool {
	if t.SharesEdgeWith(super) {
		return true
	}
	for _, vertex := range super.Vertices() {
		if t.HasVertex(vertex) {
			return true
		}
	}
	return false
}
