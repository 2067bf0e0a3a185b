package internal

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

func NewCircle(center Point, radius float64) (Circle, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return Circle{}, errors.Wrapf(ErrDegenerateTriangle, "circle at %v has radius %v", center, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// The boundary counts as inside.
func (c Circle) Contains(p Point) bool {
	return Distance(c.Center, p) <= c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{%v, r=%g}", c.Center, c.Radius)
}
