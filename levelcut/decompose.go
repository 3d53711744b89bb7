package levelcut

import (
	"fmt"
	"math"

	"github.com/npillmayer/fuzzy/interval"
)

// Decompose computes the level-cuts of the membership function described by
// points for every level of grid, from the highest level downwards. Levels
// above the peak of the function produce no cut and are skipped, so the
// result may have fewer entries than grid.
//
// Every cut is joined with the cut of the previous (higher) level, which
// makes the result nested regardless of rounding in the interpolation.
// Components at most gap apart are merged.
//
// Decompose requires points to form a polyline with non-decreasing x and
// memberships in [0,1]. The stricter shape rules of ValidateBreakpoints are
// not enforced here, as reconstructed membership functions may have valleys
// which do not reach 0.
func Decompose(points []Breakpoint, grid Grid, gap float64) ([]LevelCut, error) {
	if err := checkPolyline(points); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	cuts := make([]LevelCut, 0, len(grid))
	var prev interval.Union
	for _, alpha := range grid {
		raw := crossings(points, alpha)
		if len(raw) == 0 && prev.IsEmpty() {
			continue
		}
		u := interval.Normalize(raw, gap).Join(prev, gap)
		cuts = append(cuts, LevelCut{Alpha: alpha, Components: u})
		prev = u
	}
	tracer().Debugf("decomposed %d breakpoints into %d cuts", len(points), len(cuts))
	return cuts, nil
}

// CutAt computes a single level-cut of the membership function described by
// points. Unlike Decompose, consecutive calls are not guaranteed to be nested
// up to rounding.
func CutAt(points []Breakpoint, alpha, gap float64) (LevelCut, error) {
	if err := checkPolyline(points); err != nil {
		return LevelCut{}, err
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return LevelCut{}, fmt.Errorf("%w: level %g outside (0,1]", ErrInvalidLevel, alpha)
	}
	return LevelCut{Alpha: alpha, Components: interval.Normalize(crossings(points, alpha), gap)}, nil
}

// Support computes the closure of { x : mu(x) > 0 } of the membership
// function described by points.
func Support(points []Breakpoint, gap float64) interval.Union {
	var ivs []interval.Interval
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		if p0.Mu > 0 || p1.Mu > 0 {
			ivs = append(ivs, interval.Interval{Lo: p0.X, Hi: p1.X})
		}
	}
	return interval.Normalize(ivs, gap)
}

// crossings collects, segment by segment, the parts of the polyline with
// membership >= alpha.
func crossings(points []Breakpoint, alpha float64) []interval.Interval {
	var out []interval.Interval
	for i := 1; i < len(points); i++ {
		if iv, ok := segmentCut(points[i-1], points[i], alpha); ok {
			out = append(out, iv)
		}
	}
	return out
}

func segmentCut(p0, p1 Breakpoint, alpha float64) (interval.Interval, bool) {
	switch {
	case p0.Mu >= alpha && p1.Mu >= alpha:
		return interval.Interval{Lo: p0.X, Hi: p1.X}, true
	case p0.Mu < alpha && p1.Mu < alpha:
		return interval.Interval{}, false
	case p0.Mu < alpha: // rising through alpha
		x := p0.X + (alpha-p0.Mu)/(p1.Mu-p0.Mu)*(p1.X-p0.X)
		return interval.Interval{Lo: math.Min(x, p1.X), Hi: p1.X}, true
	}
	// falling through alpha
	x := p0.X + (p0.Mu-alpha)/(p0.Mu-p1.Mu)*(p1.X-p0.X)
	return interval.Interval{Lo: p0.X, Hi: math.Max(p0.X, math.Min(x, p1.X))}, true
}

func checkPolyline(points []Breakpoint) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no breakpoints", ErrInvalidBreakpoints)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Mu) || p.Mu < 0 || p.Mu > 1 {
			return fmt.Errorf("%w: breakpoint %d = %v", ErrInvalidBreakpoints, i, p)
		}
		if i > 0 && p.X < points[i-1].X {
			return fmt.Errorf("%w: x decreases at breakpoint %d", ErrInvalidBreakpoints, i)
		}
	}
	return nil
}
