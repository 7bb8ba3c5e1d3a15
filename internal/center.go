package internal

import "gonum.org/v1/gonum/spatial/r2"

// Accumulates points one at a time and reports their centroid. The zero value
// is ready to use.
//
// Sums are plain float64 additions in the order points are added. For very
// large sets, or sets mixing wildly different magnitudes, the last bits of the
// result depend on that order. This is accepted; no compensated summation is
// done.
type CentroidCalculator struct {
	count int
	sum   r2.Vec
}

func (calc *CentroidCalculator) Add(p *Point) {
	calc.count++
	calc.sum = r2.Add(calc.sum, p.Vec())
}

func (calc *CentroidCalculator) Count() int {
	return calc.count
}

// The arithmetic mean of everything added so far. Throws ErrEmptyInput if
// nothing was added, instead of dividing by zero into NaN.
func (calc *CentroidCalculator) Centroid() *Point {
	if calc.count == 0 {
		throw(ErrEmptyInput, "cannot find the center of zero points")
	}
	n := float64(calc.count)
	// Divide rather than scale by 1/n, which can be off in the last bit
	return &Point{X: calc.sum.X / n, Y: calc.sum.Y / n}
}

// Find the centroid of the points, to use as a default center for sorting.
func FindCenter(points PointList) *Point {
	var calc CentroidCalculator
	for _, p := range points {
		calc.Add(p)
	}
	return calc.Centroid()
}
