package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/grid"
)

const rasterAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Sample the center of each cell over the triangulation's bounding box, and
// label it with the triangle that covers it. Row 0 is the top of the picture.
func rasterize(triangles delaunay.TriangleList, width, height int) *grid.Grid[rune] {
	cells := grid.WithValue(width, height, '.')
	if len(triangles) == 0 || width <= 0 || height <= 0 {
		return cells
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range triangles {
		for _, p := range t.Vertices() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	cellWidth := (maxX - minX) / float64(width)
	cellHeight := (maxY - minY) / float64(height)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := delaunay.Point{
				X: minX + (float64(col)+0.5)*cellWidth,
				Y: maxY - (float64(row)+0.5)*cellHeight,
			}
			for i, t := range triangles {
				if t.Contains(p) {
					cells.Put(col, row, rune(rasterAlphabet[i%len(rasterAlphabet)]))
					break
				}
			}
		}
	}
	return cells
}

func renderRaster(cells *grid.Grid[rune]) string {
	var b strings.Builder
	for _, row := range cells.Rows() {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse a size like "60x20".
func parseSize(size string) (width, height int, ok bool) {
	w, h, found := strings.Cut(size, "x")
	if !found {
		return 0, 0, false
	}
	var err error
	if width, err = strconv.Atoi(w); err != nil || width <= 0 {
		return 0, 0, false
	}
	if height, err = strconv.Atoi(h); err != nil || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}
