package internal

import (
	"math/big"

	"github.com/pkg/errors"
)

// The starting super-triangle: unit area, with a vertex above the origin and
// the other two below it to the left and right. The origin is strictly
// inside, so each doubling strictly contains the previous triangle.
var (
	superTop   = Point{X: 0, Y: 0.5}
	superLeft  = Point{X: -1, Y: -0.5}
	superRight = Point{X: 1, Y: -0.5}
)

// A super-triangle, with each of its vertices mapped back to the starting
// vertex it was doubled from.
//
// However large a finite super-triangle is, some input has a thin triangle
// along its hull whose circumcircle reaches a super vertex, and that triangle
// would never appear in the result. So although the vertices have finite
// coordinates (which identify them), the predicates below treat the
// super-triangle as if it had been doubled forever. A vertex
// that started at s sits at k*s, and each test is a polynomial in k whose sign
// for large k is the sign of its leading nonzero coefficient.
type superTriangle struct {
	Triangle
	directions map[Point]Point
}

// Grow a triangle around the origin until it contains every point. This is not
// a tight bound, just a cheap one.
func SuperTriangle(points []Point, opts Options) (Triangle, error) {
	super, err := newSuperTriangle(points, opts)
	return super.Triangle, err
}

func newSuperTriangle(points []Point, opts Options) (superTriangle, error) {
	top, left, right := superTop, superLeft, superRight
	doublings := 0
	for !containsAll(NewTriangle(top, left, right), points) {
		if doublings >= opts.MaxDoublings {
			return superTriangle{}, errors.Wrapf(ErrSuperTriangleLimit, "no triangle found after %d doublings", doublings)
		}
		var ok bool
		if top, ok = doubled(top); ok {
			if left, ok = doubled(left); ok {
				right, ok = doubled(right)
			}
		}
		if !ok {
			return superTriangle{}, errors.Wrapf(ErrSuperTriangleLimit, "coordinates overflow after %d doublings", doublings)
		}
		doublings++
	}

	super := superTriangle{
		Triangle: NewTriangle(top, left, right),
		directions: map[Point]Point{
			top:   superTop,
			left:  superLeft,
			right: superRight,
		},
	}
	opts.Logger.Debug("built super-triangle", "doublings", doublings, "triangle", super.Triangle)
	return super, nil
}

func doubled(p Point) (Point, bool) {
	x, y := 2*p.X, 2*p.Y
	return Point{X: x, Y: y}, isFinite(x) && isFinite(y)
}

func containsAll(triangle Triangle, points []Point) bool {
	for _, p := range points {
		if !triangle.Contains(p) {
			return false
		}
	}
	return true
}

func (s superTriangle) isVertex(p Point) bool {
	_, ok := s.directions[p]
	return ok
}

// Whether t has at least one super-triangle vertex.
func (s superTriangle) touches(t Triangle) bool {
	return s.isVertex(t.A) || s.isVertex(t.B) || s.isVertex(t.C)
}

// Orientation of t once the super-triangle is large enough. Zero means t stays
// flat however large it gets.
func (s superTriangle) orientationSign(t Triangle) int {
	ax, ay := s.coordinates(t.A)
	bx, by := s.coordinates(t.B)
	cx, cy := s.coordinates(t.C)
	bx, by = bx.sub(ax), by.sub(ay)
	cx, cy = cx.sub(ax), cy.sub(ay)
	return bx.mul(cy).sub(by.mul(cx)).sign()
}

// Whether p is inside or on the circumcircle of t once the super-triangle is
// large enough. A circle through one super vertex tends to the half-plane on
// that vertex's side of the opposite edge. The super-triangle itself contains
// everything.
func (s superTriangle) inCircumcircle(t Triangle, p Point) bool {
	var rows [3][3]polynomial
	for i, v := range t.Vertices() {
		x, y := s.coordinates(v)
		dx, dy := x.sub(constant(p.X)), y.sub(constant(p.Y))
		rows[i] = [3]polynomial{dx, dy, dx.mul(dx).add(dy.mul(dy))}
	}
	a, b, c := rows[0], rows[1], rows[2]
	det := a[0].mul(b[1].mul(c[2]).sub(b[2].mul(c[1]))).
		sub(a[1].mul(b[0].mul(c[2]).sub(b[2].mul(c[0])))).
		add(a[2].mul(b[0].mul(c[1]).sub(b[1].mul(c[0]))))

	sign := det.sign()
	return sign == 0 || sign == s.orientationSign(t)
}

func (s superTriangle) coordinates(p Point) (x, y polynomial) {
	dir, ok := s.directions[p]
	if !ok {
		return constant(p.X), constant(p.Y)
	}
	x, y = zeroPolynomial(), zeroPolynomial()
	x[1].SetFloat64(dir.X)
	y[1].SetFloat64(dir.Y)
	return x, y
}

// Polynomial in the super-triangle's scale, lowest degree first. In-circle
// determinants have degree at most 4, and higher terms are dropped.
type polynomial [5]*big.Float

func exactFloat(f float64) *big.Float {
	return new(big.Float).SetPrec(big.MaxPrec).SetFloat64(f)
}

func zeroPolynomial() polynomial {
	var p polynomial
	for i := range p {
		p[i] = exactFloat(0)
	}
	return p
}

func constant(f float64) polynomial {
	p := zeroPolynomial()
	p[0].SetFloat64(f)
	return p
}

func (p polynomial) add(q polynomial) polynomial {
	r := zeroPolynomial()
	for i := range r {
		r[i].Add(p[i], q[i])
	}
	return r
}

func (p polynomial) sub(q polynomial) polynomial {
	r := zeroPolynomial()
	for i := range r {
		r[i].Sub(p[i], q[i])
	}
	return r
}

func (p polynomial) mul(q polynomial) polynomial {
	r := zeroPolynomial()
	term := exactFloat(0)
	for i := range p {
		if p[i].Sign() == 0 {
			continue
		}
		for j := 0; i+j < len(r); j++ {
			r[i+j].Add(r[i+j], term.Mul(p[i], q[j]))
		}
	}
	return r
}

// Sign for large k.
func (p polynomial) sign() int {
	for i := len(p) - 1; i >= 0; i-- {
		if s := p[i].Sign(); s != 0 {
			return s
		}
	}
	return 0
}
