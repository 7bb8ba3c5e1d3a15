package internal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const Tolerance = 1e-6

// Tolerance based equality, for callers who want to treat points produced by
// different float computations as the same point. This is separate from
// Equals, which is exact.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Exact coordinate equality. Two points that are geometrically the same but
// were reached through different arithmetic can compare unequal here.
func (p *Point) Equals(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p *Point) ApproxEquals(other *Point) bool {
	return ApproxEqual(p.X, other.X) && ApproxEqual(p.Y, other.Y)
}

// Offset of p from the origin o, as a vector.
func (p *Point) Sub(o *Point) r2.Vec {
	return r2.Sub(p.Vec(), o.Vec())
}

func (p *Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func FromVec(v r2.Vec) *Point {
	return &Point{X: v.X, Y: v.Y}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Equals compares two lists point by point, using exact equality.
func (list PointList) Equals(other PointList) bool {
	if len(list) != len(other) {
		return false
	}
	for i, p := range list {
		if !p.Equals(other[i]) {
			return false
		}
	}
	return true
}

// Copy of the list. The points themselves are shared.
func (list PointList) Clone() PointList {
	return append(PointList(nil), list...)
}
