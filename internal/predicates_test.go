package internal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationSign(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{0, 1}
	assert.Equal(t, 1, orientationSign(a, b, c))
	assert.Equal(t, -1, orientationSign(a, c, b))
	assert.Equal(t, 0, orientationSign(a, b, Point{2, 0}))
	assert.Equal(t, 0, orientationSign(Point{0.1, 0.1}, Point{0.2, 0.2}, Point{0.3, 0.3}))

	t.Run("near collinear", func(t *testing.T) {
		// Points near a line, where plain float evaluation depends on the
		// order of the arguments
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 1000; i++ {
			base := 1e6 * r.Float64()
			a := Point{base, base}
			b := Point{base + 0.5 + r.Float64(), base + 0.5 + r.Float64()}
			c := Point{base + 12 + 1e-10*r.Float64(), base + 12}
			sign := orientationSign(a, b, c)
			assert.Equal(t, sign, orientationSign(b, c, a), "%v %v %v", a, b, c)
			assert.Equal(t, sign, orientationSign(c, a, b), "%v %v %v", a, b, c)
			assert.Equal(t, -sign, orientationSign(b, a, c), "%v %v %v", a, b, c)
		}
	})
}

func TestInCircleSign(t *testing.T) {
	a, b, c := Point{0, 0}, Point{1, 0}, Point{1, 1}
	assert.Equal(t, 0, inCircleSign(a, b, c, Point{0, 1}))
	assert.Equal(t, 1, inCircleSign(a, b, c, Point{0.5, 0.5}))
	assert.Equal(t, -1, inCircleSign(a, b, c, Point{2, 2}))
	// Clockwise flips the sign
	assert.Equal(t, -1, inCircleSign(a, c, b, Point{0.5, 0.5}))

	t.Run("far from origin", func(t *testing.T) {
		offset := Point{1e6, 1e6}
		a, b, c, d := a.Add(offset), b.Add(offset), c.Add(offset), Point{0, 1}.Add(offset)
		assert.Equal(t, 0, inCircleSign(a, b, c, d))
		assert.Equal(t, 0, inCircleSign(b, c, d, a))
	})

	t.Run("regular polygon", func(t *testing.T) {
		// Rounded vertices are nearly cocircular, and the sign must not depend
		// on which three of them define the circle.
		ring := RegularPolygon(12, false)
		for i := range ring {
			p, q, r, s := ring[i], ring[(i+3)%12], ring[(i+6)%12], ring[(i+9)%12]
			sign := inCircleSign(p, q, r, s)
			assert.Equal(t, -sign, inCircleSign(q, r, s, p), "%v %v %v %v", p, q, r, s)
			assert.Equal(t, sign, inCircleSign(r, s, p, q), "%v %v %v %v", p, q, r, s)
		}
	})
}

func TestTriangle_InCircumcircle(t *testing.T) {
	tri := NewTriangle(Point{0, 0}, Point{1, 0}, Point{1, 1})
	assert.True(t, tri.InCircumcircle(Point{0, 1}))
	assert.True(t, tri.InCircumcircle(Point{0.5, 0.5}))
	assert.True(t, tri.InCircumcircle(Point{0, 0}))
	assert.False(t, tri.InCircumcircle(Point{2, 2}))
	assert.False(t, tri.InCircumcircle(Point{-0.001, 1}))
}
