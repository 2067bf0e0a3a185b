package internal

import (
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// Default number of decimal digits written in WKT output.
const DefaultWKTDecimalDigits = 9

// Convert the triangulation into a MultiPolygon with one closed ring per
// triangle.
func (list TriangleList) Geometry() *geom.MultiPolygon {
	coords := make([][][]geom.Coord, len(list))
	for i, t := range list {
		coords[i] = [][]geom.Coord{{
			{t.A.X, t.A.Y},
			{t.B.X, t.B.Y},
			{t.C.X, t.C.Y},
			{t.A.X, t.A.Y},
		}}
	}
	return geom.NewMultiPolygon(geom.XY).MustSetCoords(coords)
}

// Encode the triangulation as a WKT MULTIPOLYGON.
func (list TriangleList) WKT(maxDecimalDigits int) (string, error) {
	return wkt.Marshal(list.Geometry(), wkt.EncodeOptionWithMaxDecimalDigits(maxDecimalDigits))
}
