package interval

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
)

// Interval is a closed interval [Lo,Hi] of reals.
type Interval struct {
	Lo, Hi float64
}

// New creates an interval, checking that lo <= hi and that both bounds are
// finite.
func New(lo, hi float64) (Interval, error) {
	iv := Interval{Lo: lo, Hi: hi}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}
	return iv, nil
}

// Point returns the degenerate interval [c,c].
func Point(c float64) Interval {
	return Interval{Lo: c, Hi: c}
}

// Validate returns ErrInvalidInterval if iv is not a proper closed interval.
func (iv Interval) Validate() error {
	if !finite(iv.Lo) || !finite(iv.Hi) {
		return fmt.Errorf("%w: [%g,%g] has a non-finite bound", ErrInvalidInterval, iv.Lo, iv.Hi)
	}
	if iv.Lo > iv.Hi {
		return fmt.Errorf("%w: [%g,%g] has lo > hi", ErrInvalidInterval, iv.Lo, iv.Hi)
	}
	return nil
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g,%g]", iv.Lo, iv.Hi)
}

// Width returns Hi-Lo.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

// IsPoint reports whether iv is degenerate.
func (iv Interval) IsPoint() bool {
	return iv.Lo == iv.Hi
}

// Mid returns the midpoint of iv.
func (iv Interval) Mid() float64 {
	return iv.Lo + (iv.Hi-iv.Lo)/2
}

// Contains reports whether x lies within iv, bounds included.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Covers reports whether other lies within iv, allowing for each bound of
// other to exceed iv by at most tol.
func (iv Interval) Covers(other Interval, tol float64) bool {
	return other.Lo >= iv.Lo-tol && other.Hi <= iv.Hi+tol
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Lo <= other.Hi && other.Lo <= iv.Hi
}

// Hull returns the smallest interval containing both iv and other.
func (iv Interval) Hull(other Interval) Interval {
	return Interval{Lo: math.Min(iv.Lo, other.Lo), Hi: math.Max(iv.Hi, other.Hi)}
}

// Add returns [iv.Lo+other.Lo, iv.Hi+other.Hi].
func (iv Interval) Add(other Interval) Interval {
	return Interval{Lo: iv.Lo + other.Lo, Hi: iv.Hi + other.Hi}
}

// Sub returns [iv.Lo-other.Hi, iv.Hi-other.Lo].
func (iv Interval) Sub(other Interval) Interval {
	return Interval{Lo: iv.Lo - other.Hi, Hi: iv.Hi - other.Lo}
}

// Negate returns [-iv.Hi, -iv.Lo]. iv.Sub(j) equals iv.Add(j.Negate()).
func (iv Interval) Negate() Interval {
	return Interval{Lo: -iv.Hi, Hi: -iv.Lo}
}

// Translate shifts iv by d.
func (iv Interval) Translate(d float64) Interval {
	return Interval{Lo: iv.Lo + d, Hi: iv.Hi + d}
}

// Equal compares bounds with tolerance tol.
func (iv Interval) Equal(other Interval, tol float64) bool {
	return math.Abs(iv.Lo-other.Lo) <= tol && math.Abs(iv.Hi-other.Hi) <= tol
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
