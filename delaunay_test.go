package delaunay

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{1, -1},
		{1, 1},
		{-1, 1},
		{-1, -1},
	}

	triangles, err := Triangulate(points...)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
	assert.NoError(t, triangles.Validate(points))
}

func TestTriangulate_Errors(t *testing.T) {
	t.Run("invalid coordinate", func(t *testing.T) {
		triangles, err := Triangulate(Point{0, 0}, Point{1, 0}, Point{math.NaN(), 1})
		assert.Nil(t, triangles)
		require.True(t, errors.Is(err, ErrInvalidCoordinate), "unexpected error: %v", err)

		var coordinateErr *InvalidCoordinateError
		require.True(t, errors.As(err, &coordinateErr))
		assert.Equal(t, 2, coordinateErr.Index)
	})

	t.Run("collinear", func(t *testing.T) {
		_, err := Triangulate(Point{0, 0}, Point{1, 1}, Point{2, 2})
		assert.True(t, errors.Is(err, ErrDegenerateInput), "unexpected error: %v", err)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := Triangulate(Point{0, 0}, Point{1, 1}, Point{0, 0})
		assert.True(t, errors.Is(err, ErrDegenerateInput), "unexpected error: %v", err)
	})

	t.Run("growth limit", func(t *testing.T) {
		_, err := TriangulateWithOptions(Options{MaxDoublings: 2}, Point{0, 0}, Point{100, 0}, Point{0, 100})
		assert.True(t, errors.Is(err, ErrSuperTriangleLimit), "unexpected error: %v", err)
	})
}

func TestNewPoint(t *testing.T) {
	_, err := NewPoint(math.Inf(-1), 0)
	assert.True(t, errors.Is(err, ErrInvalidCoordinate))

	p, err := NewPoint(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, Distance(p, Point{}))
}
