package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Points in a list are pointers, so that debugging helpers can tell apart two
// points that happen to share coordinates. Nothing in this package modifies a
// point it was handed.
type PointList []*Point

// Result of comparing two points around a center. The values line up with the
// usual three-way int convention, so an Ordering can be handed straight to
// slices.SortFunc and friends.
type Ordering int

const (
	// Precedes means the first point comes before the second
	Precedes Ordering = iota - 1
	// EqualPriority means neither point is ordered before the other
	EqualPriority
	// Follows means the first point comes after the second
	Follows
)

var orderingLabels = [3]string{"Precedes", "EqualPriority", "Follows"}

func (o Ordering) String() string {
	if o > 1 || o < -1 {
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
	return orderingLabels[int(o+1)]
}

// A Comparator orders a and b around center. Every comparison in a single sort
// must be given the same center, or the result is meaningless.
type Comparator func(center, a, b *Point) Ordering

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
