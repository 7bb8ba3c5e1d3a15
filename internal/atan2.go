package internal

import "math"

// Angle of p around center, in (-π, π]. A point coincident with the center
// gets math.Atan2(0, 0), which is 0.
func Angle(center, p *Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// Orders points by descending polar angle around the center. Points at exactly
// the same angle are EqualPriority regardless of their distance from the
// center, which is a deliberate difference from Less. A stable sort leaves such
// points in their input order.
func AngularOrder(center, a, b *Point) Ordering {
	angleA := Angle(center, a)
	angleB := Angle(center, b)
	if angleA > angleB {
		return Precedes
	}
	if angleB > angleA {
		return Follows
	}
	return EqualPriority
}
