package internal

// Signed area of the list, treated as a closed ring (shoelace formula). Positive
// for counterclockwise rings, negative for clockwise ones.
func (list PointList) SignedArea() float64 {
	var area float64
	for i, p := range list {
		next := list[CircularIndex(i+1, len(list))]
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}

func IsCW(list PointList) bool {
	return list.SignedArea() < 0
}

func IsCCW(list PointList) bool {
	return list.SignedArea() > 0
}
