package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

// Make a triangle in canonical form, so that the same three points always
// produce an identical Triangle value regardless of the order they are given
// in.
func NewTriangle(a, b, c Point) Triangle {
	// Rotate the smallest vertex to the front. Rotation preserves winding.
	if b.Less(a) && !c.Less(b) {
		a, b, c = b, c, a
	} else if c.Less(a) && c.Less(b) {
		a, b, c = c, a, b
	}

	// Swapping B and C negates the orientation, so whichever order the caller
	// used, the decision below comes out the same.
	o := orientationSign(a, b, c)
	if o < 0 || (o == 0 && c.Less(b)) {
		b, c = c, b
	}
	return Triangle{A: a, B: b, C: c}
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// The three edges (A,B), (B,C), (C,A) as canonical segments.
func (t Triangle) Edges() [3]Segment {
	vertices := t.Vertices()
	var edges [3]Segment
	for i := range vertices {
		edges[i] = NewSegment(vertices[i], vertices[CircularIndex(i+1, len(vertices))])
	}
	return edges
}

// Barycentric point-in-triangle test. The boundary rule is lopsided on
// purpose: the two edges through A count as inside, while the edge opposite A
// (BC) counts as outside.
func (t Triangle) Contains(p Point) bool {
	a := t.A.vec()
	v0 := t.C.vec().Sub(a)
	v1 := t.B.vec().Sub(a)
	v2 := p.vec().Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	// For a degenerate triangle this divides by zero, and the comparisons below
	// are all false for the resulting NaN/Inf weights.
	invDenom := 1 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return u >= 0 && v >= 0 && u+v < 1
}

// Compute the circle passing through all three vertices. Collinear vertices
// have no circumcircle, and give a DegenerateTriangleError.
func (t Triangle) Circumcircle() (Circle, error) {
	a := t.A.vec()
	b := t.B.vec().Sub(a)
	c := t.C.vec().Sub(a)

	d := 2 * (b.X*c.Y - c.X*b.Y)
	if d == 0 {
		return Circle{}, &DegenerateTriangleError{Triangle: t}
	}

	bb := b.Dot(b)
	cc := c.Dot(c)
	ux := (c.Y*bb - b.Y*cc) / d
	uy := (b.X*cc - c.X*bb) / d

	center, err := NewPoint(ux+a.X, uy+a.Y)
	if err != nil {
		return Circle{}, &DegenerateTriangleError{Triangle: t}
	}
	// Measure the radius to an actual vertex, so that the vertices themselves
	// test consistently against the circle.
	circle, err := NewCircle(center, Distance(center, t.A))
	if err != nil {
		return Circle{}, &DegenerateTriangleError{Triangle: t}
	}
	return circle, nil
}

// Exact test for whether p is inside or on the circumcircle. Unlike
// Circumcircle, this never fails: a flat triangle's "circle" is its line, and
// only points on that line count as inside.
func (t Triangle) InCircumcircle(p Point) bool {
	s := inCircleSign(t.A, t.B, t.C, p)
	return s == 0 || s == orientationSign(t.A, t.B, t.C)
}

// Positive for counterclockwise triangles. Canonical triangles are never
// negative.
func (t Triangle) SignedArea() float64 {
	return orientation(t.A, t.B, t.C) / 2
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Exact, unlike the sign of SignedArea.
func (t Triangle) IsCCW() bool {
	return orientationSign(t.A, t.B, t.C) > 0
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// Check every edge against every edge of the other triangle.
func (t Triangle) SharesEdgeWith(other Triangle) bool {
	for _, edge := range t.Edges() {
		for _, otherEdge := range other.Edges() {
			if edge == otherEdge {
				return true
			}
		}
	}
	return false
}

func (t Triangle) Less(other Triangle) bool {
	if t.A != other.A {
		return t.A.Less(other.A)
	}
	if t.B != other.B {
		return t.B.Less(other.B)
	}
	return t.C.Less(other.C)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}

// Readable, colored name for debug output. Degenerate triangles are red,
// clockwise ones (which should never exist) are cyan.
func (t Triangle) DbgName() string {
	name := dbg.Name(t)
	switch {
	case orientationSign(t.A, t.B, t.C) == 0:
		name = aurora.Red(name).String()
	case !t.IsCCW():
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}
