package internal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Make a point, validating that both coordinates are finite.
func NewPoint(x, y float64) (Point, error) {
	if !isFinite(x) || !isFinite(y) {
		return Point{}, &InvalidCoordinateError{Index: -1, X: x, Y: y}
	}
	// Adding zero turns -0 into +0, so the two zeros can't produce distinct
	// edges or triangles.
	return Point{X: x + 0, Y: y + 0}, nil
}

// Like NewPoint, but panics. Used for the results of arithmetic.
func mustPoint(x, y float64) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		throw(err)
	}
	return p
}

func (p Point) vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func fromVec(v r2.Point) Point {
	return mustPoint(v.X, v.Y)
}

func (p Point) Add(other Point) Point {
	return fromVec(p.vec().Add(other.vec()))
}

func (p Point) Sub(other Point) Point {
	return fromVec(p.vec().Sub(other.vec()))
}

// A non-finite factor always fails, even for the origin.
func (p Point) Scale(factor float64) Point {
	if !isFinite(factor) {
		throw(&InvalidCoordinateError{Index: -1, X: p.X * factor, Y: p.Y * factor})
	}
	return fromVec(p.vec().Mul(factor))
}

func (p Point) Neg() Point {
	return mustPoint(-p.X, -p.Y)
}

func (p Point) Dot(other Point) float64 {
	return p.vec().Dot(other.vec())
}

func (p Point) Cross(other Point) float64 {
	return p.vec().Cross(other.vec())
}

func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lexicographic ordering, by X and then by Y.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Twice the signed area of a, b, c. Positive when counterclockwise.
func orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
