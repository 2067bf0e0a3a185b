package internal

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Threading errors through every geometric operation would make arithmetic on
// points and triangles very noisy. Instead, we use panics, and the public API
// recovers to convert to an error.

type TriangulateError error

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrDegenerateTriangle = errors.New("degenerate triangle")
	ErrDegenerateInput    = errors.New("degenerate input")
	ErrSuperTriangleLimit = errors.New("super-triangle growth limit exceeded")
)

// A coordinate was NaN or infinite. Index is the position of the offending
// point in the caller's input, or -1 when the point was produced by
// arithmetic.
type InvalidCoordinateError struct {
	Index int
	X, Y  float64
}

func (e *InvalidCoordinateError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: (%v, %v)", ErrInvalidCoordinate, e.X, e.Y)
	}
	return fmt.Sprintf("%v: point %d is (%v, %v)", ErrInvalidCoordinate, e.Index, e.X, e.Y)
}

func (e *InvalidCoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}

// A triangle whose circumcircle is not finite, usually because its vertices
// are collinear or coincident.
type DegenerateTriangleError struct {
	Triangle Triangle
}

func (e *DegenerateTriangleError) Error() string {
	return fmt.Sprintf("%v: %v", ErrDegenerateTriangle, e.Triangle)
}

func (e *DegenerateTriangleError) Is(target error) bool {
	return target == ErrDegenerateTriangle
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with an existing error, attaching a stack.
func throw(err error) {
	panic(errors.WithStack(err))
}

// Convert a recovered panic into an error. Runtime errors (nil dereferences,
// bad indexes and so on) are bugs rather than bad input, so they keep
// panicking, as does anything that isn't an error.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if _, ok := r.(runtime.Error); ok {
			panic(r)
		}
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
