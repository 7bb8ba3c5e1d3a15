package internal

import "slices"

// Bind a comparator to a center, giving a three-way comparison function that
// generic sort routines accept.
func Bind(center *Point, cmp Comparator) func(a, b *Point) int {
	if center == nil {
		fatalf("cannot sort around a nil center")
	}
	if cmp == nil {
		fatalf("nil comparator")
	}
	return func(a, b *Point) int {
		return int(cmp(center, a, b))
	}
}

// Sort the list in place around the center. The sort is stable, so points the
// comparator considers EqualPriority keep their input order.
func (list PointList) SortAround(center *Point, cmp Comparator) {
	slices.SortStableFunc(list, Bind(center, cmp))
}

// Sorted copy of the list; the original is left alone.
func (list PointList) SortedAround(center *Point, cmp Comparator) PointList {
	sorted := list.Clone()
	sorted.SortAround(center, cmp)
	return sorted
}

func (list PointList) IsSortedAround(center *Point, cmp Comparator) bool {
	return slices.IsSortedFunc(list, Bind(center, cmp))
}
