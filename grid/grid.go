// A rectangular grid of values, stored row by row.
//
// Triangulation doesn't depend on this package. It is here for code that
// rasterizes a triangulation, like the demo command.
package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrOutOfBounds = errors.New("index out of bounds")

type Grid[T any] struct {
	width, height int
	data          []T
}

// Create a grid of given width and height, with each entry set to val.
func WithValue[T any](width, height int, val T) *Grid[T] {
	g := WithDefault[T](width, height)
	for i := range g.data {
		g.data[i] = val
	}
	return g
}

// Create a grid of given width and height, with each entry set to the zero
// value of T. Negative dimensions are treated as zero.
func WithDefault[T any](width, height int) *Grid[T] {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid[T]{
		width:  width,
		height: height,
		data:   make([]T, width*height),
	}
}

func (g *Grid[T]) Width() int {
	return g.width
}

func (g *Grid[T]) Height() int {
	return g.height
}

func (g *Grid[T]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *Grid[T]) outOfBounds(x, y int) error {
	return errors.Wrapf(ErrOutOfBounds, "(%d, %d) in %dx%d grid", x, y, g.width, g.height)
}

// Checked read.
func (g *Grid[T]) Get(x, y int) (T, error) {
	if !g.inBounds(x, y) {
		var zero T
		return zero, g.outOfBounds(x, y)
	}
	return g.data[y*g.width+x], nil
}

// Checked write.
func (g *Grid[T]) Set(x, y int, val T) error {
	if !g.inBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.data[y*g.width+x] = val
	return nil
}

// Unchecked read. Panics when out of bounds.
func (g *Grid[T]) At(x, y int) T {
	if !g.inBounds(x, y) {
		panic(fmt.Sprintf("Index out of bounds: (%d, %d) but the grid is %dx%d", x, y, g.width, g.height))
	}
	return g.data[y*g.width+x]
}

// Unchecked write. Panics when out of bounds.
func (g *Grid[T]) Put(x, y int, val T) {
	if !g.inBounds(x, y) {
		panic(fmt.Sprintf("Index out of bounds: (%d, %d) but the grid is %dx%d", x, y, g.width, g.height))
	}
	g.data[y*g.width+x] = val
}

// The grid as a slice of rows, row 0 first. The rows share storage with the
// grid.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = g.data[y*g.width : (y+1)*g.width]
	}
	return rows
}
