package levelcut

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/fuzzy/interval"
)

// LevelCut is the alpha-cut of a fuzzy set at level Alpha: the set of values
// whose membership is at least Alpha, as a union of disjoint intervals.
type LevelCut struct {
	Alpha      float64
	Components interval.Union
}

// New creates a level-cut from intervals. alpha must be in (0,1], the
// intervals must be proper. Overlapping or touching intervals are merged.
func New(alpha float64, ivs ...interval.Interval) (LevelCut, error) {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return LevelCut{}, fmt.Errorf("%w: level %g outside (0,1]", ErrInvalidLevel, alpha)
	}
	for _, iv := range ivs {
		if err := iv.Validate(); err != nil {
			return LevelCut{}, err
		}
	}
	return LevelCut{Alpha: alpha, Components: interval.Of(ivs...)}, nil
}

func (c LevelCut) String() string {
	return fmt.Sprintf("cut(%g: %v)", c.Alpha, c.Components)
}

// IsEmpty reports whether the cut has no components.
func (c LevelCut) IsEmpty() bool {
	return c.Components.IsEmpty()
}

// IsConvex reports whether the cut consists of a single interval.
func (c LevelCut) IsConvex() bool {
	return c.Components.Len() == 1
}

// Contains reports whether x is part of the cut.
func (c LevelCut) Contains(x float64) bool {
	return c.Components.Contains(x)
}

// Covers reports whether the cut contains narrow as a subset, allowing for
// a tolerance tol at each bound. Levels are not compared.
func (c LevelCut) Covers(narrow LevelCut, tol float64) bool {
	return c.Components.Covers(narrow.Components, tol)
}

// Negate mirrors the cut at 0.
func (c LevelCut) Negate() LevelCut {
	return LevelCut{Alpha: c.Alpha, Components: c.Components.Negate()}
}

// Equal compares levels exactly and components with tolerance tol.
func (c LevelCut) Equal(other LevelCut, tol float64) bool {
	return c.Alpha == other.Alpha && c.Components.Equal(other.Components, tol)
}

// CheckNesting checks a family of cuts ordered by descending level: levels
// must be strictly descending in (0,1] and every cut must cover the cut of
// the next higher level within tolerance tol.
func CheckNesting(cuts []LevelCut, tol float64) error {
	for i, c := range cuts {
		if math.IsNaN(c.Alpha) || c.Alpha <= 0 || c.Alpha > 1 {
			return fmt.Errorf("%w: level %g outside (0,1]", ErrInvalidLevel, c.Alpha)
		}
		if err := c.Components.Validate(); err != nil {
			return fmt.Errorf("cut at level %g: %w", c.Alpha, err)
		}
		if i == 0 {
			continue
		}
		higher := cuts[i-1]
		if c.Alpha >= higher.Alpha {
			return fmt.Errorf("%w: levels not strictly descending at %g", ErrInvalidLevel, c.Alpha)
		}
		if !c.Covers(higher, tol) {
			return fmt.Errorf("%w: cut at %g does not contain cut at %g", ErrNotNested, c.Alpha, higher.Alpha)
		}
	}
	return nil
}
