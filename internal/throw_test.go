package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.PanicsWithError(t, "runtime error: index out of range [0] with length 0", func() {
			defer func() {
				HandleTriangulatePanicRecover(recover())
			}()
			var triangles []Triangle
			_ = triangles[len(triangles)]
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})
}

func TestTypedErrors(t *testing.T) {
	tri := Triangle{Point{0, 0}, Point{1, 1}, Point{2, 2}}
	err := recoverError(func() { throw(&DegenerateTriangleError{Triangle: tri}) })
	assert.True(t, errors.Is(err, ErrDegenerateTriangle))
	assert.False(t, errors.Is(err, ErrDegenerateInput))

	var degenerate *DegenerateTriangleError
	if assert.True(t, errors.As(err, &degenerate)) {
		assert.Equal(t, tri, degenerate.Triangle)
	}

	err = &InvalidCoordinateError{Index: 3, X: 1, Y: 2}
	assert.EqualError(t, err, "invalid coordinate: point 3 is (1, 2)")
	err = &InvalidCoordinateError{Index: -1, X: 1, Y: 2}
	assert.EqualError(t, err, "invalid coordinate: (1, 2)")
}
