package internal

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

var comparators = map[string]Comparator{
	"less":  Less,
	"atan2": AngularOrder,
}

func TestSortAround_Idempotent(t *testing.T) {
	lists := []PointList{
		pts(-2, 3, 9, 1, 2, 2, -2, -2, -3, 1, 2, -1),
		pts(3, 9, 11, 5, 7, 8, -2, 3, 7, 8, 2, 2, -2, -2, -3, 1, 2, -1),
		pts(2, 0, 4, 0, 1, 0, 0, 0, 0, 2, 0, -2, -1, 0),
	}
	for name, cmp := range comparators {
		cmp := cmp
		t.Run(name, func(t *testing.T) {
			for _, list := range lists {
				center := FindCenter(list)
				once := list.SortedAround(center, cmp)
				assert.True(t, once.IsSortedAround(center, cmp))
				twice := once.SortedAround(center, cmp)
				for i := range once {
					assert.Same(t, once[i], twice[i])
				}
			}
		})
	}
}

func TestSortedAround_LeavesInputAlone(t *testing.T) {
	list := pts(1, 0, 0, 1, -1, 0, 0, -1)
	original := list.Clone()
	sorted := list.SortedAround(&Point{0, 0}, Less)
	for i := range list {
		assert.Same(t, original[i], list[i])
	}
	assert.True(t, sorted.Equals(pts(0, 1, 1, 0, 0, -1, -1, 0)), "got %v", sorted)
}

func TestSortAround_Stable(t *testing.T) {
	center := &Point{0, 0}
	// All on the same ray, so every pair is EqualPriority
	list := pts(3, 3, 1, 1, 2, 2, 5, 5)
	original := list.Clone()
	list.SortAround(center, AngularOrder)
	for i := range list {
		assert.Same(t, original[i], list[i])
	}
}

func TestBind(t *testing.T) {
	center := &Point{0, 0}
	compare := Bind(center, Less)
	assert.Equal(t, -1, compare(&Point{0, 1}, &Point{-1, 0}))
	assert.Equal(t, 1, compare(&Point{-1, 0}, &Point{0, 1}))

	for _, fn := range []func(){
		func() { Bind(nil, Less) },
		func() { Bind(center, nil) },
	} {
		err := func() (err error) {
			defer func() {
				err = HandleRadialPanicRecover(recover())
			}()
			fn()
			return nil
		}()
		assert.Error(t, err)
		assert.False(t, errors.Is(err, ErrEmptyInput))
	}
}

func TestSortAround_NilPointIsNotAnError(t *testing.T) {
	list := PointList{{X: 1}, nil, {X: 2}}
	assert.Panics(t, func() {
		_ = func() (err error) {
			defer func() {
				err = HandleRadialPanicRecover(recover())
			}()
			list.SortAround(&Point{0, 0}, Less)
			return nil
		}()
	})
}

// Sorting with Less and then rotating everything about the center gives a
// sequence that AngularOrder agrees with, apart from where the sequence wraps
// around at ±π.
func TestRotationConsistency(t *testing.T) {
	center := &Point{0.5, 0}
	list := pts(4, 0.5, 3, 3, 0.5, 3, 1.5, 4, -1, 2, -3, -0.5, -2, -3, 1, -4, 3.5, -2.5, 0.5, -1)
	list.SortAround(center, Less)
	n := len(list)

	for _, alpha := range []float64{0, 0.3, 1.1, math.Pi / 2, 2.9, -2.2, 5} {
		rotatedCenter := FromVec(r2.Rotate(center.Vec(), alpha, center.Vec()))
		require.InDelta(t, center.X, rotatedCenter.X, 1e-12)
		require.InDelta(t, center.Y, rotatedCenter.Y, 1e-12)

		rotated := make(PointList, n)
		for i, p := range list {
			rotated[i] = FromVec(r2.Rotate(p.Vec(), alpha, center.Vec()))
		}

		byAngle := rotated.SortedAround(rotatedCenter, AngularOrder)

		// byAngle must be a cyclic shift of rotated
		start := -1
		for i, p := range rotated {
			if p == byAngle[0] {
				start = i
			}
		}
		require.NotEqual(t, -1, start)
		for i := range byAngle {
			assert.Same(t, rotated[CircularIndex(start+i, n)], byAngle[i], "alpha=%v index=%d", alpha, i)
		}
	}
}

func TestComparatorsAreSafeForConcurrentUse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	list := make(PointList, 50)
	for i := range list {
		list[i] = &Point{rng.NormFloat64(), rng.NormFloat64()}
	}
	center := FindCenter(list)

	expected := make(map[string][]Ordering)
	for name, cmp := range comparators {
		var results []Ordering
		for _, a := range list {
			for _, b := range list {
				results = append(results, cmp(center, a, b))
			}
		}
		expected[name] = results
	}

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		for name, cmp := range comparators {
			name, cmp := name, cmp
			wg.Add(1)
			go func() {
				defer wg.Done()
				i := 0
				for _, a := range list {
					for _, b := range list {
						assert.Equal(t, expected[name][i], cmp(center, a, b))
						i++
					}
				}
			}()
		}
	}
	wg.Wait()
}
