package levelcut

import (
	"fmt"
	"math"
	"sort"
)

// Breakpoint is a vertex (X, Mu) of a piecewise-linear membership function.
type Breakpoint struct {
	X, Mu float64
}

func (bp Breakpoint) String() string {
	return fmt.Sprintf("(%g,%g)", bp.X, bp.Mu)
}

// ValidateBreakpoints checks that points describe a membership function with
// finite support:
//
//   - at least two points, all coordinates finite
//   - X is non-decreasing (equal X values form a vertical edge)
//   - Mu is in [0,1], 0 at the first and last point, and positive somewhere
//   - after falling, Mu may only rise again once it has reached 0
//
// The last rule separates humps of a multimodal function by zero-membership
// valleys.
func ValidateBreakpoints(points []Breakpoint) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: need at least 2 breakpoints, have %d", ErrInvalidBreakpoints, len(points))
	}
	peak := 0.0
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
			return fmt.Errorf("%w: breakpoint %d has non-finite x", ErrInvalidBreakpoints, i)
		}
		if math.IsNaN(p.Mu) || p.Mu < 0 || p.Mu > 1 {
			return fmt.Errorf("%w: breakpoint %d has membership %g outside [0,1]", ErrInvalidBreakpoints, i, p.Mu)
		}
		if i > 0 && p.X < points[i-1].X {
			return fmt.Errorf("%w: x decreases at breakpoint %d", ErrInvalidBreakpoints, i)
		}
		peak = math.Max(peak, p.Mu)
	}
	if points[0].Mu != 0 || points[len(points)-1].Mu != 0 {
		return fmt.Errorf("%w: membership must be 0 at both ends of the support", ErrInvalidBreakpoints)
	}
	if peak == 0 {
		return fmt.Errorf("%w: membership is 0 everywhere", ErrInvalidBreakpoints)
	}
	falling, floor := false, 0.0
	for i := 1; i < len(points); i++ {
		m0, m1 := points[i-1].Mu, points[i].Mu
		switch {
		case m1 > m0:
			if falling && floor > 0 {
				return fmt.Errorf("%w: membership rises at breakpoint %d before reaching 0", ErrInvalidBreakpoints, i)
			}
			falling = false
		case m1 < m0:
			if !falling {
				falling, floor = true, m1
			}
		}
		if falling {
			floor = math.Min(floor, m1)
		}
	}
	return nil
}

// Peak returns the maximum membership of points.
func Peak(points []Breakpoint) float64 {
	peak := 0.0
	for _, p := range points {
		peak = math.Max(peak, p.Mu)
	}
	return peak
}

// Evaluate computes the membership at x of the polyline through points.
// Outside of the polyline's x-range the membership is 0. On a vertical edge
// the highest membership wins.
//
// points are expected to have non-decreasing X.
func Evaluate(points []Breakpoint, x float64) float64 {
	n := len(points)
	if n == 0 || x < points[0].X || x > points[n-1].X {
		return 0
	}
	// first point with X >= x
	i := sort.Search(n, func(i int) bool { return points[i].X >= x })
	if points[i].X == x {
		mu := points[i].Mu
		for j := i + 1; j < n && points[j].X == x; j++ {
			mu = math.Max(mu, points[j].Mu)
		}
		return mu
	}
	p0, p1 := points[i-1], points[i]
	return p0.Mu + (p1.Mu-p0.Mu)*(x-p0.X)/(p1.X-p0.X)
}
