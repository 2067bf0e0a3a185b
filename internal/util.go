package internal

import (
	"math"
	"sort"
)

// Tolerance for comparisons in validation. The engine itself only uses exact
// comparisons.
const Epsilon = 1e-9

// Relative comparison that scales the tolerance with the magnitude of the
// operands.
func Equal(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Epsilon*scale
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func (set TriangleSet) Add(t Triangle) {
	circle, err := t.Circumcircle()
	if err != nil {
		throw(err)
	}
	set[t] = circle
}

func (set TriangleSet) Remove(t Triangle) {
	delete(set, t)
}

// Flatten the set into a deterministic, sorted list.
func (set TriangleSet) List() TriangleList {
	list := make(TriangleList, 0, len(set))
	for t := range set {
		list = append(list, t)
	}
	list.Sort()
	return list
}

func (list TriangleList) Sort() {
	sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
}

func (counts SegmentCounts) AddEdges(t Triangle) {
	for _, edge := range t.Edges() {
		counts[edge]++
	}
}
