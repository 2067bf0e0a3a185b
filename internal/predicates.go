package internal

import (
	"math"

	"github.com/golang/geo/r3"
)

// Orientation and in-circle tests decide the whole structure of the
// triangulation, and a wrong answer near zero leaves holes or overlaps. Both
// tests try plain floats first and only trust the result when it clears the
// rounding error bound from Shewchuk's "Adaptive Precision Floating-Point
// Arithmetic and Fast Robust Geometric Predicates". Anything closer to zero is
// recomputed exactly with big floats.
//
// The float64() conversions stop the compiler from fusing multiply-adds, which
// the error bounds don't account for.

const (
	roundoff         = 0x1p-53
	orientationBound = (3 + 16*roundoff) * roundoff
	inCircleBound    = (10 + 96*roundoff) * roundoff
)

func preciseVector(p Point) r3.PreciseVector {
	return r3.NewPreciseVector(p.X, p.Y, 0)
}

// Sign of the orientation of a, b, c. 1 for counterclockwise, -1 for clockwise,
// and 0 when the points are exactly collinear.
func orientationSign(a, b, c Point) int {
	left := float64((a.X - c.X) * (b.Y - c.Y))
	right := float64((a.Y - c.Y) * (b.X - c.X))
	det := left - right
	bound := orientationBound * (math.Abs(left) + math.Abs(right))
	if det > bound {
		return 1
	}
	if -det > bound {
		return -1
	}

	u := preciseVector(b).Sub(preciseVector(a))
	v := preciseVector(c).Sub(preciseVector(a))
	return u.Cross(v).Z.Sign()
}

// Sign of the in-circle determinant for d against the circle through a, b, c.
// For counterclockwise a, b, c it is 1 when d is inside, -1 when outside, and 0
// when the four points are exactly cocircular. Clockwise triangles flip the
// sign.
func inCircleSign(a, b, c, d Point) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := float64(bdx*cdy), float64(cdx*bdy)
	cdxady, adxcdy := float64(cdx*ady), float64(adx*cdy)
	adxbdy, bdxady := float64(adx*bdy), float64(bdx*ady)
	alift := float64(adx*adx) + float64(ady*ady)
	blift := float64(bdx*bdx) + float64(bdy*bdy)
	clift := float64(cdx*cdx) + float64(cdy*cdy)

	det := float64(alift*(bdxcdy-cdxbdy)) +
		float64(blift*(cdxady-adxcdy)) +
		float64(clift*(adxbdy-bdxady))
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	bound := inCircleBound * permanent
	if det > bound {
		return 1
	}
	if -det > bound {
		return -1
	}

	// Lift each point onto the paraboloid z = x² + y² around d. The
	// determinant is then a triple product.
	lift := func(p Point) r3.PreciseVector {
		v := preciseVector(p).Sub(preciseVector(d))
		return r3.PreciseVector{X: v.X, Y: v.Y, Z: v.Norm2()}
	}
	return lift(a).Dot(lift(b).Cross(lift(c))).Sign()
}
