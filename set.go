package fuzzy

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
	"slices"

	"github.com/npillmayer/fuzzy/interval"
	"github.com/npillmayer/fuzzy/levelcut"
)

// Set is an immutable fuzzy set over the reals, represented as a family of
// nested level-cuts together with its support and its piecewise-linear
// membership function.
//
// A Set created by
//
//	Set{}
//
// is the empty set. Operations on it fail with ErrEmptySet.
type Set struct {
	support interval.Union        // closure of mu > 0
	cuts    []levelcut.LevelCut   // descending by level, nested
	points  []levelcut.Breakpoint // membership polyline
	gap     float64               // merge gap used at construction
	tol     float64               // tolerance used at construction
}

// FromBreakpoints creates a fuzzy set from a piecewise-linear membership
// function. Breakpoints have to start and end with membership 0, x-coordinates
// have to be non-decreasing and the membership may not be 0 everywhere.
//
// The set is decomposed at the levels of the configured grid plus the peak
// membership. With a resolution of 0 the native grid is used, i.e. the
// distinct membership degrees of the breakpoints.
func FromBreakpoints(points []levelcut.Breakpoint, cfg Config) (Set, error) {
	if err := cfg.Validate(); err != nil {
		return Set{}, err
	}
	cfg = cfg.normalized()
	if err := levelcut.ValidateBreakpoints(points); err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrInvalidFuzzySet, err)
	}
	grid := cfg.uniform()
	if grid == nil {
		grid = nativeGrid(points)
	}
	grid = grid.With(levelcut.Peak(points))
	cuts, err := levelcut.Decompose(points, grid, cfg.MergeGap)
	if err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrInvalidFuzzySet, err)
	}
	s := Set{
		support: levelcut.Support(points, cfg.MergeGap),
		cuts:    cuts,
		points:  slices.Clone(points),
		gap:     cfg.MergeGap,
		tol:     cfg.Tolerance,
	}
	T().Debugf("fuzzy set from %d breakpoints: %d levels", len(points), len(cuts))
	return s, nil
}

// nativeGrid returns the distinct positive membership degrees of points.
func nativeGrid(points []levelcut.Breakpoint) levelcut.Grid {
	levels := make(levelcut.Grid, 0, len(points))
	for _, p := range points {
		levels = append(levels, p.Mu)
	}
	return levelcut.MergeGrids(levels)
}

// FromCuts creates a fuzzy set from a family of level-cuts. The cuts may be
// given in any order, but levels have to be distinct and the cuts have to be
// nested. The lowest cut becomes the support of the set and the membership
// function is reconstructed from the cuts.
func FromCuts(cuts []levelcut.LevelCut, cfg Config) (Set, error) {
	if err := cfg.Validate(); err != nil {
		return Set{}, err
	}
	cfg = cfg.normalized()
	family := make([]levelcut.LevelCut, 0, len(cuts))
	for _, c := range cuts {
		if c.IsEmpty() {
			continue
		}
		ivs := c.Components.Intervals()
		for _, iv := range ivs {
			if err := iv.Validate(); err != nil {
				return Set{}, fmt.Errorf("%w: %w", ErrInvalidFuzzySet, err)
			}
		}
		family = append(family, levelcut.LevelCut{
			Alpha:      c.Alpha,
			Components: interval.Normalize(ivs, cfg.MergeGap),
		})
	}
	if len(family) == 0 {
		return Set{}, ErrEmptySet
	}
	slices.SortStableFunc(family, func(a, b levelcut.LevelCut) int {
		switch {
		case a.Alpha > b.Alpha:
			return -1
		case a.Alpha < b.Alpha:
			return 1
		}
		return 0
	})
	if err := levelcut.CheckNesting(family, cfg.Tolerance); err != nil {
		return Set{}, fmt.Errorf("%w: %w", ErrInvalidFuzzySet, err)
	}
	support := family[len(family)-1].Components
	return newSet(support, family, cfg), nil
}

// newSet creates a set from a nested family, reconstructing its membership
// function.
func newSet(support interval.Union, cuts []levelcut.LevelCut, cfg Config) Set {
	return Set{
		support: support,
		cuts:    cuts,
		points:  levelcut.Reconstruct(support, cuts),
		gap:     cfg.MergeGap,
		tol:     cfg.Tolerance,
	}
}

// Crisp returns the fuzzy set representing the real number c: membership 1 at
// c and 0 everywhere else. c has to be finite.
func Crisp(c float64) Set {
	p := interval.Point(c)
	return Set{
		support: interval.Of(p),
		cuts:    []levelcut.LevelCut{{Alpha: 1, Components: interval.Of(p)}},
		points:  []levelcut.Breakpoint{{X: c, Mu: 0}, {X: c, Mu: 1}, {X: c, Mu: 0}},
		gap:     DefaultMergeGap,
		tol:     DefaultTolerance,
	}
}

// Triangular returns the triangular fuzzy number with support [a,c] and peak b.
func Triangular(a, b, c float64, cfg Config) (Set, error) {
	return FromBreakpoints([]levelcut.Breakpoint{{X: a, Mu: 0}, {X: b, Mu: 1}, {X: c, Mu: 0}}, cfg)
}

// Trapezoidal returns the trapezoidal fuzzy number with support [a,d] and core
// [b,c].
func Trapezoidal(a, b, c, d float64, cfg Config) (Set, error) {
	return FromBreakpoints([]levelcut.Breakpoint{
		{X: a, Mu: 0}, {X: b, Mu: 1}, {X: c, Mu: 1}, {X: d, Mu: 0},
	}, cfg)
}

// --- Queries ---------------------------------------------------------------

// IsEmpty returns true for the empty set.
func (s Set) IsEmpty() bool {
	return len(s.cuts) == 0
}

// Support returns the closure of the points with positive membership.
func (s Set) Support() interval.Union {
	return s.support
}

// Cuts returns the level-cuts of s, ordered by descending level.
func (s Set) Cuts() []levelcut.LevelCut {
	return slices.Clone(s.cuts)
}

// Levels returns the native grid of s, i.e. the levels of its cuts.
func (s Set) Levels() levelcut.Grid {
	g := make(levelcut.Grid, len(s.cuts))
	for i, c := range s.cuts {
		g[i] = c.Alpha
	}
	return g
}

// Breakpoints returns the piecewise-linear membership function of s.
func (s Set) Breakpoints() []levelcut.Breakpoint {
	return slices.Clone(s.points)
}

// Membership returns the membership degree of x in s.
func (s Set) Membership(x float64) float64 {
	if s.IsEmpty() {
		return 0
	}
	return levelcut.Evaluate(s.points, x)
}

// Peak returns the highest membership degree of s. Sets with a peak below 1
// are called subnormal.
func (s Set) Peak() float64 {
	if s.IsEmpty() {
		return 0
	}
	return s.cuts[0].Alpha
}

// IsNormal returns true if some value has membership 1.
func (s Set) IsNormal() bool {
	return s.Peak() == 1
}

// Core returns the values of highest membership, i.e. the top level-cut.
func (s Set) Core() interval.Union {
	if s.IsEmpty() {
		return interval.Union{}
	}
	return s.cuts[0].Components
}

// Modes returns the number of disjoint humps at the top level.
func (s Set) Modes() int {
	return s.Core().Len()
}

// IsConvex returns true if every level-cut of s, including the support, is a
// single interval.
func (s Set) IsConvex() bool {
	if s.IsEmpty() || s.support.Len() != 1 {
		return false
	}
	for _, c := range s.cuts {
		if !c.IsConvex() {
			return false
		}
	}
	return true
}

// IsCrisp returns true if s represents a single real number.
func (s Set) IsCrisp() bool {
	if s.IsEmpty() || s.support.Len() != 1 || !s.IsNormal() {
		return false
	}
	return s.support.At(0).IsPoint()
}

// Contains returns true if x has a membership of at least alpha in s. For
// levels between native levels the membership function is consulted.
// Contains is false for every alpha above 1 and for NaN; use CutAt to tell
// an invalid level from a missing membership.
func (s Set) Contains(x, alpha float64) bool {
	if s.IsEmpty() || math.IsNaN(alpha) || alpha > 1 {
		return false
	}
	if alpha <= 0 {
		return s.support.Contains(x)
	}
	if c, ok := s.nativeCut(alpha); ok {
		return c.Contains(x)
	}
	return s.Membership(x) >= alpha
}

// CutAt returns the level-cut of s at level alpha. Level 0 denotes the
// support. Native levels return the stored cut; other levels are cut from the
// membership function. Levels outside of [0,1] result in ErrDomain.
func (s Set) CutAt(alpha float64) (levelcut.LevelCut, error) {
	if s.IsEmpty() {
		return levelcut.LevelCut{}, ErrEmptySet
	}
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return levelcut.LevelCut{}, fmt.Errorf("%w: %w: level %g", ErrDomain, levelcut.ErrInvalidLevel, alpha)
	}
	if alpha == 0 {
		return levelcut.LevelCut{Alpha: 0, Components: s.support}, nil
	}
	if c, ok := s.nativeCut(alpha); ok {
		return c, nil
	}
	return levelcut.CutAt(s.points, alpha, s.gap)
}

func (s Set) nativeCut(alpha float64) (levelcut.LevelCut, bool) {
	i, ok := slices.BinarySearchFunc(s.cuts, alpha, func(c levelcut.LevelCut, a float64) int {
		switch {
		case c.Alpha > a:
			return -1
		case c.Alpha < a:
			return 1
		}
		return 0
	})
	if !ok {
		return levelcut.LevelCut{}, false
	}
	return s.cuts[i], true
}

// decompose cuts s at the levels of grid, not above its peak.
func (s Set) decompose(grid levelcut.Grid) ([]levelcut.LevelCut, error) {
	return levelcut.Decompose(s.points, grid, s.gap)
}

// Equal compares two sets: supports and membership functions have to agree
// within tol. Memberships are compared at all breakpoints of either set and,
// between consecutive breakpoints, at both one-sided limits, which catches
// differences at vertical edges.
func (s Set) Equal(other Set, tol float64) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() == other.IsEmpty()
	}
	if !s.support.Equal(other.support, tol) {
		return false
	}
	xs := make([]float64, 0, len(s.points)+len(other.points))
	for _, p := range s.points {
		xs = append(xs, p.X)
	}
	for _, p := range other.points {
		xs = append(xs, p.X)
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)
	diff := func(x float64) float64 {
		return s.Membership(x) - other.Membership(x)
	}
	for i, x := range xs {
		if math.Abs(diff(x)) > tol {
			return false
		}
		if i == 0 {
			continue
		}
		// both functions are linear between x0 and x
		x0 := xs[i-1]
		h := (x - x0) / 3
		d1, d2 := diff(x0+h), diff(x-h)
		if math.Abs(d1) > tol || math.Abs(d2) > tol ||
			math.Abs(2*d1-d2) > tol || math.Abs(2*d2-d1) > tol {
			T().Debugf("sets differ between %g and %g", x0, x)
			return false
		}
	}
	return true
}

func (s Set) String() string {
	if s.IsEmpty() {
		return "fuzzy.Set{}"
	}
	return fmt.Sprintf("fuzzy.Set{support=%s, peak=%g, levels=%d}", s.support, s.Peak(), len(s.cuts))
}

// --- Derived sets ----------------------------------------------------------

// Negate returns the fuzzy set -s, mirroring the membership function at 0.
func (s Set) Negate() Set {
	if s.IsEmpty() {
		return s
	}
	n := s
	n.support = s.support.Negate()
	n.cuts = make([]levelcut.LevelCut, len(s.cuts))
	for i, c := range s.cuts {
		n.cuts[i] = c.Negate()
	}
	n.points = make([]levelcut.Breakpoint, len(s.points))
	for i, p := range s.points {
		n.points[len(s.points)-1-i] = levelcut.Breakpoint{X: -p.X, Mu: p.Mu}
	}
	return n
}

// WithCut returns a copy of s with an additional level-cut. The level may not
// be present in s already, and the cut has to fit into the nesting of the
// existing cuts. A cut below the lowest level may widen the support.
func (s Set) WithCut(cut levelcut.LevelCut) (Set, error) {
	if s.IsEmpty() {
		return Set{}, ErrEmptySet
	}
	if _, ok := s.nativeCut(cut.Alpha); ok {
		return Set{}, fmt.Errorf("%w: duplicate level %g", ErrInvalidFuzzySet, cut.Alpha)
	}
	cfg := s.config()
	cuts := append(s.Cuts(), cut)
	n, err := FromCuts(cuts, cfg)
	if err != nil {
		return Set{}, err
	}
	support := s.support.Join(n.support, s.gap)
	return newSet(support, n.cuts, cfg), nil
}

// WithoutLevel returns a copy of s with the cut at level alpha removed. The
// support is left unchanged. Removing the last level is an error.
func (s Set) WithoutLevel(alpha float64) (Set, error) {
	if _, ok := s.nativeCut(alpha); !ok {
		return Set{}, fmt.Errorf("%w: no level %g", ErrIllegalArguments, alpha)
	}
	if len(s.cuts) == 1 {
		return Set{}, ErrEmptySet
	}
	cuts := slices.DeleteFunc(s.Cuts(), func(c levelcut.LevelCut) bool {
		return c.Alpha == alpha
	})
	return newSet(s.support, cuts, s.config()), nil
}

func (s Set) config() Config {
	cfg := DefaultConfig()
	cfg.MergeGap, cfg.Tolerance = s.gap, s.tol
	return cfg.normalized()
}
