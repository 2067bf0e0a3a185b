package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Make a canonical segment. The endpoints must differ; a zero-length segment
// has no direction and can only come from duplicate points.
func NewSegment(a, b Point) Segment {
	if a == b {
		throw(errors.Wrapf(ErrDegenerateInput, "zero-length segment at %v", a))
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{A: a, B: b}
}

func (s Segment) Endpoints() (Point, Point) {
	return s.A, s.B
}

func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

func (s Segment) HasEndpoint(p Point) bool {
	return s.A == p || s.B == p
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}
