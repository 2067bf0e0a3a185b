package internal

// The engine works on points measured from the center of their bounding box.
// Points far from the origin would otherwise need a much larger super-triangle
// and lose precision in every circumcircle.
type localFrame struct {
	offset Point
	// Local point to input point
	world map[Point]Point
}

// Build the frame for points, and return the points in local coordinates, in
// the same order.
func newLocalFrame(points []Point) (localFrame, []Point) {
	if frame, local, ok := tryLocalFrame(points, boundingBoxCenter(points)); ok {
		return frame, local
	}
	// Translation merged two points or overflowed. Subtracting zero can do
	// neither.
	frame, local, _ := tryLocalFrame(points, Point{})
	return frame, local
}

func boundingBoxCenter(points []Point) Point {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	// Halving first keeps the sum from overflowing
	return Point{X: minX/2 + maxX/2, Y: minY/2 + maxY/2}
}

func tryLocalFrame(points []Point, offset Point) (localFrame, []Point, bool) {
	frame := localFrame{offset: offset, world: make(map[Point]Point, len(points))}
	local := make([]Point, len(points))
	for i, p := range points {
		q, err := NewPoint(p.X-offset.X, p.Y-offset.Y)
		if err != nil {
			return localFrame{}, nil, false
		}
		if _, ok := frame.world[q]; ok {
			return localFrame{}, nil, false
		}
		frame.world[q] = p
		local[i] = q
	}
	return frame, local, true
}

func (f localFrame) toWorld(p Point) Point {
	w, ok := f.world[p]
	if !ok {
		fatalf("%v is not a local input point", p)
	}
	return w
}

// Map a local triangulation back onto the input points.
func (f localFrame) triangulationToWorld(list TriangleList) TriangleList {
	result := make(TriangleList, len(list))
	for i, t := range list {
		result[i] = NewTriangle(f.toWorld(t.A), f.toWorld(t.B), f.toWorld(t.C))
	}
	result.Sort()
	return result
}

// Map the input points of a single triangle back, leaving super-triangle
// vertices as they are. Used for reporting errors.
func (f localFrame) triangleToWorld(t Triangle) Triangle {
	vertices := t.Vertices()
	for i, v := range vertices {
		if w, ok := f.world[v]; ok {
			vertices[i] = w
		}
	}
	return NewTriangle(vertices[0], vertices[1], vertices[2])
}
