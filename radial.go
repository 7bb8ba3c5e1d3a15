// Angular ordering of 2D points around a center.
//
// Two orderings are provided. Less sweeps clockwise from the top using only
// sign tests and a cross product, breaking ties on a shared ray by putting the
// farther point first. AngularOrder sorts by descending atan2 angle and treats
// points on a shared ray as equal. The two are deliberately not the same;
// pick the one whose tie-breaking you want.
//
// By default the center is the centroid of the points being sorted.
package radial

import "github.com/osuushi/radial/internal"

type Point = internal.Point
type PointList = internal.PointList
type Ordering = internal.Ordering
type Comparator = internal.Comparator

const (
	Precedes      = internal.Precedes
	EqualPriority = internal.EqualPriority
	Follows       = internal.Follows
)

// Returned by Center and the centroid based sorts when given no points. Test
// for it with errors.Is.
var ErrEmptyInput = internal.ErrEmptyInput

// Compare two points around a center, by quadrant and cross product. Never
// reports EqualPriority.
func Less(center, a, b *Point) Ordering {
	return internal.Less(center, a, b)
}

// Compare two points around a center by descending atan2 angle.
func AngularOrder(center, a, b *Point) Ordering {
	return internal.AngularOrder(center, a, b)
}

// The centroid (coordinate-wise mean) of the points.
func Center(points ...*Point) (center *Point, err error) {
	defer func() {
		recoveredErr := internal.HandleRadialPanicRecover(recover())
		if recoveredErr != nil {
			center = nil
			err = recoveredErr
		}
	}()
	return internal.FindCenter(points), nil
}

// Sort the points in place around their centroid using Less, and return the
// centroid used.
func Sort(points []*Point) (*Point, error) {
	return sortAroundCentroid(points, internal.Less)
}

// Sort the points in place around their centroid using AngularOrder, and
// return the centroid used.
func SortByAtan2(points []*Point) (*Point, error) {
	return sortAroundCentroid(points, internal.AngularOrder)
}

// Stable, in place sort of the points around an explicit center.
func SortAround(center *Point, points []*Point, cmp Comparator) (err error) {
	defer func() {
		err = internal.HandleRadialPanicRecover(recover())
	}()
	PointList(points).SortAround(center, cmp)
	return nil
}

func sortAroundCentroid(points []*Point, cmp Comparator) (*Point, error) {
	center, err := Center(points...)
	if err != nil {
		return nil, err
	}
	if err := SortAround(center, points, cmp); err != nil {
		return nil, err
	}
	return center, nil
}
