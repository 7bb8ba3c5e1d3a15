package internal

// Build a list from flat x, y pairs.
func pts(coords ...float64) PointList {
	if len(coords)%2 != 0 {
		panic("odd number of coordinates")
	}
	list := make(PointList, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		list = append(list, &Point{coords[i], coords[i+1]})
	}
	return list
}
