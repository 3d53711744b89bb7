package levelcut

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/xtgo/set"
)

// Grid is a strictly descending sequence of levels in (0,1].
type Grid []float64

// levelPrecision is the resolution levels are snapped to when grids are
// merged. Levels closer than this are considered equal.
const (
	levelPrecision = 1e-12
	levelScale     = 1e12
)

// Uniform returns the grid {n/n, (n-1)/n, ..., 1/n}. For n < 1 it returns an
// empty grid.
func Uniform(n int) Grid {
	if n < 1 {
		return Grid{}
	}
	g := make(Grid, n)
	for i := range g {
		g[i] = float64(n-i) / float64(n)
	}
	return g
}

// Validate checks that g is strictly descending within (0,1].
func (g Grid) Validate() error {
	for i, a := range g {
		if math.IsNaN(a) || a <= 0 || a > 1 {
			return fmt.Errorf("%w: level %g outside (0,1]", ErrInvalidLevel, a)
		}
		if i > 0 && a >= g[i-1] {
			return fmt.Errorf("%w: grid not strictly descending at %d", ErrInvalidLevel, i)
		}
	}
	return nil
}

// Top returns the highest level of g, or 0 for an empty grid.
func (g Grid) Top() float64 {
	if len(g) == 0 {
		return 0
	}
	return g[0]
}

// Contains reports whether level alpha is part of g (up to the snapping
// precision).
func (g Grid) Contains(alpha float64) bool {
	i := sort.Search(len(g), func(i int) bool { return g[i] <= alpha+levelPrecision })
	return i < len(g) && g[i] >= alpha-levelPrecision
}

// With returns a copy of g with additional levels merged in.
func (g Grid) With(levels ...float64) Grid {
	return MergeGrids(g, Grid(levels))
}

// MergeGrids returns the union of grids as a new grid. Levels outside of
// (0,1] are dropped, levels closer than 1e-12 are merged.
func MergeGrids(grids ...Grid) Grid {
	var acc sort.Float64Slice
	for _, g := range grids {
		asc := make(sort.Float64Slice, 0, len(g))
		for _, a := range g {
			if a > 0 && a <= 1 {
				asc = append(asc, Snap(a))
			}
		}
		asc.Sort()
		asc = asc[:set.Uniq(asc)]
		pivot := len(acc)
		acc = append(acc, asc...)
		acc = acc[:set.Union(acc, pivot)]
	}
	merged := Grid(acc)
	slices.Reverse(merged)
	return merged
}

// Snap rounds a level to 12 decimal places. Exact levels like 1 or 1/2 are
// left untouched.
func Snap(a float64) float64 {
	return math.Round(a*levelScale) / levelScale
}
