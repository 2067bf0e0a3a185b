package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It collects the center of every circle element
// in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

var fixtureNames = []string{"scatter", "spiral", "clusters"}

// Some ad hoc fixtures

func UnitSquare() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// Uniform points in the unit square. Seeded, so the same seed always gives the
// same points.
func RandomPoints(seed int64, n int) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{r.Float64(), r.Float64()}
	}
	return points
}

// A jittered ring of hull points around a disk of interior points. The jitter
// keeps the ring points from being exactly cocircular.
func JitteredRing(seed int64, hull, interior int) []Point {
	r := rand.New(rand.NewSource(seed))
	var points []Point
	for i := 0; i < hull; i++ {
		radius := 1 + 0.1*r.Float64()
		angle := 2 * math.Pi * (float64(i) + 0.3*r.Float64()) / float64(hull)
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	for i := 0; i < interior; i++ {
		radius := 0.8 * math.Sqrt(r.Float64())
		angle := 2 * math.Pi * r.Float64()
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return points
}

// Integer lattice, width by height points. Every unit square has four
// cocircular corners.
func Lattice(width, height int) []Point {
	var points []Point
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			points = append(points, Point{float64(x), float64(y)})
		}
	}
	return points
}

// Vertices of a regular polygon on the unit circle, optionally with its center.
func RegularPolygon(sides int, withCenter bool) []Point {
	var points []Point
	for i := 0; i < sides; i++ {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points = append(points, Point{math.Cos(angle), math.Sin(angle)})
	}
	if withCenter {
		points = append(points, Point{0, 0})
	}
	return points
}
