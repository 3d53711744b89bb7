package levelcut

import (
	"math"
	"slices"
	"sort"

	"github.com/npillmayer/fuzzy/interval"
)

// Membership computes the membership of x for a fuzzy set given by its
// support and its cuts, ordered by descending level.
//
// Outside of the support the membership is 0. Otherwise let alpha_k be the
// highest level whose cut contains x. The membership is interpolated
// linearly between the boundary of x's component at alpha_k and the nearest
// boundary of the next higher cut within that component. If x lies in a
// valley between two components of the higher cut, the interpolation runs
// down to alpha_k at the midpoint of the valley. If the component contains
// no part of the higher cut, the membership is alpha_k.
//
// The support acts as the cut at level 0.
func Membership(support interval.Union, cuts []LevelCut, x float64) float64 {
	if !support.Contains(x) || len(cuts) == 0 {
		return 0
	}
	n := len(cuts)
	k := sort.Search(n, func(i int) bool { return cuts[i].Contains(x) })
	if k == 0 {
		return cuts[0].Alpha
	}
	lower, lowAlpha := support, 0.0
	if k < n {
		lower, lowAlpha = cuts[k].Components, cuts[k].Alpha
	}
	higher, highAlpha := cuts[k-1].Components, cuts[k-1].Alpha
	ci, ok := lower.Find(x)
	if !ok { // only possible for cuts which are not strictly nested
		return lowAlpha
	}
	comp := lower.At(ci)
	l, r := higher.Neighbours(x)
	hasL := l >= 0 && higher.At(l).Lo >= comp.Lo
	hasR := r < higher.Len() && higher.At(r).Hi <= comp.Hi
	switch {
	case hasL && hasR:
		left, right := higher.At(l).Hi, higher.At(r).Lo
		mid := left + (right-left)/2
		if x <= mid {
			return lerp(left, highAlpha, mid, lowAlpha, x)
		}
		return lerp(mid, lowAlpha, right, highAlpha, x)
	case hasR:
		return lerp(comp.Lo, lowAlpha, higher.At(r).Lo, highAlpha, x)
	case hasL:
		return lerp(higher.At(l).Hi, highAlpha, comp.Hi, lowAlpha, x)
	}
	return lowAlpha
}

// Reconstruct produces the breakpoints of the piecewise-linear membership
// function described by a support and cuts ordered by descending level.
//
// Breakpoints are placed at every boundary of the support and the cuts and
// at the midpoints of valleys; between them Membership is linear. Every
// support component starts and ends with membership 0, with a vertical edge
// where the lowest cut reaches up to the support boundary. Where the left or
// right limit of the membership differs from its value, as at the foot of a
// run of equal cuts, the limit gets a breakpoint of its own.
func Reconstruct(support interval.Union, cuts []LevelCut) []Breakpoint {
	xs := candidates(support, cuts)
	points := make([]Breakpoint, 0, len(xs)+2*support.Len())
	add := func(x, mu float64) {
		if n := len(points); n > 0 && points[n-1].X == x && math.Abs(points[n-1].Mu-mu) <= limitEps {
			return
		}
		points = append(points, Breakpoint{X: x, Mu: mu})
	}
	i := 0
	for s := range support.All() {
		for i < len(xs) && xs[i] < s.Lo {
			i++
		}
		j := i
		for i < len(xs) && xs[i] <= s.Hi {
			i++
		}
		comp := xs[j:i]
		add(s.Lo, 0)
		var left float64
		for k, x := range comp {
			if k > 0 {
				add(x, left)
			}
			add(x, Membership(support, cuts, x))
			if k+1 < len(comp) {
				var right float64
				right, left = limits(support, cuts, x, comp[k+1])
				add(x, right)
			}
		}
		add(s.Hi, 0)
	}
	tracer().Debugf("reconstructed %d breakpoints from %d cuts", len(points), len(cuts))
	return points
}

// limitEps is the distance below which a one-sided limit coincides with the
// membership at a breakpoint.
const limitEps = 1e-9

// limits returns the membership just right of x0 and just left of x1.
// Membership is linear on the open interval (x0,x1).
func limits(support interval.Union, cuts []LevelCut, x0, x1 float64) (float64, float64) {
	h := (x1 - x0) / 3
	m1 := Membership(support, cuts, x0+h)
	m2 := Membership(support, cuts, x1-h)
	clamp := func(mu float64) float64 { return min(max(mu, 0), 1) }
	return clamp(2*m1 - m2), clamp(2*m2 - m1)
}

// candidates collects all x positions where the reconstructed membership
// function may change its slope.
func candidates(support interval.Union, cuts []LevelCut) []float64 {
	var xs []float64
	for iv := range support.All() {
		xs = append(xs, iv.Lo, iv.Hi)
	}
	for _, c := range cuts {
		for i := 0; i < c.Components.Len(); i++ {
			iv := c.Components.At(i)
			xs = append(xs, iv.Lo, iv.Hi)
			if i > 0 {
				prev := c.Components.At(i - 1)
				xs = append(xs, prev.Hi+(iv.Lo-prev.Hi)/2)
			}
		}
	}
	slices.Sort(xs)
	return slices.Compact(xs)
}

func lerp(x0, y0, x1, y1, x float64) float64 {
	if x1 <= x0 {
		return max(y0, y1)
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
