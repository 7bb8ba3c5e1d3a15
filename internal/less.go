package internal

import "gonum.org/v1/gonum/spatial/r2"

// Quadrant based angular comparison. This avoids trigonometry entirely, so it
// is fast and has no branch cut to worry about. The resulting order is a
// clockwise sweep that starts at the top of the center, runs down through the
// right half plane, and then up through the left half plane.
//
// The rules are applied in priority order:
//
// 1. Points on the right of the center (including directly above or below it)
// come before points on the left.
//
// 2. If both points are on the vertical line through the center, and either is
// at or above the center, the higher point comes first. If both are below, the
// lower point comes first.
//
// 3. Otherwise, the sign of the cross product (center->a) x (center->b)
// decides. Negative means a is ahead in the clockwise sweep.
//
// 4. Collinear points are, by now, on the same ray, and the farther one comes
// first.
//
// This never reports EqualPriority. Identical points report Follows.
func Less(center, a, b *Point) Ordering {
	da := a.Sub(center)
	db := b.Sub(center)

	if da.X >= 0 && db.X < 0 {
		return Precedes
	}
	if da.X < 0 && db.X >= 0 {
		return Follows
	}

	if da.X == 0 && db.X == 0 {
		if da.Y >= 0 || db.Y >= 0 {
			if a.Y > b.Y {
				return Precedes
			}
			return Follows
		}
		if b.Y > a.Y {
			return Precedes
		}
		return Follows
	}

	det := r2.Cross(da, db)
	if det < 0 {
		return Precedes
	}
	if det > 0 {
		return Follows
	}

	// Same ray from the center, so distance decides
	if r2.Norm2(da) > r2.Norm2(db) {
		return Precedes
	}
	return Follows
}
