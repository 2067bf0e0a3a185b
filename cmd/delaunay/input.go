package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay"
	"github.com/pkg/errors"
)

// Read points in the form "x y", one per line. Blank lines and lines starting
// with # are ignored.
func readPoints(in io.Reader) ([]delaunay.Point, error) {
	var points []delaunay.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (delaunay.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return delaunay.Point{}, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return delaunay.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return delaunay.NewPoint(x, y)
}
