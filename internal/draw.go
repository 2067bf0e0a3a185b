package internal

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the triangulation so edges on the hull aren't clipped
const drawPadding = 20

// Render the triangulation onto a new context. Scale is pixels per unit.
func (list TriangleList) Draw(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range list {
		for _, p := range t.Vertices() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if len(list) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	for _, t := range list {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.8)
		c.FillPreserve()
		c.Push()
		// Line width is in user space, so undo the scale to keep lines thin
		c.SetLineWidth(2 / scale)
		c.SetRGB(0, 1, 1)
		c.Stroke()
		c.Pop()
	}

	// Mark the vertices
	c.SetRGB(1, 1, 1)
	for _, t := range list {
		for _, p := range t.Vertices() {
			c.DrawCircle(p.X, p.Y, 3/scale)
			c.Fill()
		}
	}
	return c
}

func (list TriangleList) SavePNG(path string, scale float64) error {
	return list.Draw(scale).SavePNG(path)
}

// Helper to draw and print a triangulation in the terminal (iTerm only) for
// debugging.
func (list TriangleList) dbgDraw(scale float64) {
	path := filepath.Join(os.TempDir(), "triangulation.png")
	list.SavePNG(path, scale)
	imgcat.CatFile(path, os.Stdout)
}
