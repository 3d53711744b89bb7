package fuzzy

import (
	"fmt"
	"math"
	"slices"

	"github.com/benbjohnson/immutable"
	"github.com/npillmayer/fuzzy/interval"
	"github.com/npillmayer/fuzzy/levelcut"
)

// descending orders levels from 1 downwards.
type descending struct{}

func (descending) Compare(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

// levels collects the intervals of combined cuts per output level.
type levels struct {
	m   *immutable.SortedMap[float64, []interval.Interval]
	op  func(a, b interval.Interval) interval.Interval
	cfg Config
}

func newLevels(op Operator, cfg Config) *levels {
	return &levels{
		m:   immutable.NewSortedMap[float64, []interval.Interval](descending{}),
		op:  op.interval(),
		cfg: cfg,
	}
}

// collect combines two cuts and files the result under level T(alpha_a, alpha_b).
// Levels which vanish under the t-norm are absorbed by the support.
func (l *levels) collect(ca, cb levelcut.LevelCut) error {
	alpha, err := l.cfg.TNorm.Apply(ca.Alpha, cb.Alpha)
	if err != nil {
		return err
	}
	alpha = levelcut.Snap(alpha)
	if alpha <= 0 {
		T().Debugf("%s(%g,%g) = 0, pair dropped", l.cfg.TNorm, ca.Alpha, cb.Alpha)
		return nil
	}
	u := interval.Combine(ca.Components, cb.Components, l.op, l.cfg.MergeGap)
	prev, _ := l.m.Get(alpha)
	l.m = l.m.Set(alpha, append(slices.Clip(prev), u.Intervals()...))
	return nil
}

// grid returns the shared decomposition grid for two operands.
func (cfg Config) grid(a, b Set) levelcut.Grid {
	g := cfg.uniform()
	if g == nil {
		g = levelcut.MergeGrids(a.Levels(), b.Levels())
	}
	return g.With(a.Peak(), b.Peak())
}

func extend(op Operator, a, b Set, cfg Config) (Set, error) {
	grid := cfg.grid(a, b)
	ca, err := a.decompose(grid)
	if err != nil {
		return Set{}, err
	}
	cb, err := b.decompose(grid)
	if err != nil {
		return Set{}, err
	}
	T().Debugf("%s: %d × %d cuts, t-norm %s, %s pairing", op, len(ca), len(cb), cfg.TNorm, cfg.Pairing)
	lv := newLevels(op, cfg)
	switch cfg.Pairing {
	case Full:
		for _, x := range ca {
			for _, y := range cb {
				if err = lv.collect(x, y); err != nil {
					return Set{}, err
				}
			}
		}
	default:
		err = pairDiagonal(lv, ca, cb)
	}
	if err != nil {
		return Set{}, err
	}
	support := interval.Combine(a.support, b.support, op.interval(), cfg.MergeGap)
	cuts, err := repair(lv, support, cfg)
	if err != nil {
		return Set{}, err
	}
	if len(cuts) == 0 {
		T().Infof("%s: all levels vanish under t-norm %s", op, cfg.TNorm)
		return Set{}, ErrEmptySet
	}
	return newSet(support, cuts, cfg), nil
}

// pairDiagonal pairs cuts of equal level. Additionally the top cut of either
// operand is paired with every cut of the other one, which places the peak of
// the result at T(peak_a, peak_b) and keeps crisp operands neutral.
// Both cut lists are descending and taken from the same grid.
func pairDiagonal(lv *levels, ca, cb []levelcut.LevelCut) error {
	if len(ca) == 0 || len(cb) == 0 {
		return nil
	}
	i, j := 0, 0
	for i < len(ca) && j < len(cb) {
		switch {
		case ca[i].Alpha > cb[j].Alpha:
			i++
		case ca[i].Alpha < cb[j].Alpha:
			j++
		default:
			if err := lv.collect(ca[i], cb[j]); err != nil {
				return err
			}
			i++
			j++
		}
	}
	for _, y := range cb[1:] {
		if err := lv.collect(ca[0], y); err != nil {
			return err
		}
	}
	for _, x := range ca[1:] {
		if err := lv.collect(x, cb[0]); err != nil {
			return err
		}
	}
	return lv.collect(ca[0], cb[0])
}

// repair turns the collected levels into a nested family of cuts. Walking
// from the top level downwards, every cut is joined with the cut above it.
// Cuts have to stay within the support, up to the tolerance relative to the
// magnitude of the support. A level whose cut only repeats the cut above
// because of the join is dropped. If the level's own intervals already span
// the cut above, the level is kept: the membership function has a vertical
// edge there and the lower end of the run carries its foot.
func repair(lv *levels, support interval.Union, cfg Config) ([]levelcut.LevelCut, error) {
	tol := cfg.Tolerance * magnitude(support)
	cuts := make([]levelcut.LevelCut, 0, lv.m.Len())
	var prev interval.Union
	for itr := lv.m.Iterator(); !itr.Done(); {
		alpha, ivs, _ := itr.Next()
		own := interval.Normalize(ivs, cfg.MergeGap)
		u := own.Join(prev, cfg.MergeGap)
		if err := u.Validate(); err != nil {
			T().Errorf("nesting repair at level %g: %v", alpha, err)
			return nil, fmt.Errorf("%w: level %g: %w", ErrNestingRepair, alpha, err)
		}
		if !support.Covers(u, tol) {
			T().Errorf("nesting repair at level %g: cut %s exceeds support %s", alpha, u, support)
			return nil, fmt.Errorf("%w: level %g exceeds support", ErrNestingRepair, alpha)
		}
		u = clip(u, support, tol)
		if len(cuts) > 0 && u.Equal(prev, tol) && !own.Covers(prev, tol) {
			T().Debugf("nesting repair: level %g coincides with level %g", alpha, cuts[len(cuts)-1].Alpha)
			continue
		}
		cuts = append(cuts, levelcut.LevelCut{Alpha: alpha, Components: u})
		prev = u
	}
	return cuts, nil
}

// clip clamps every component of u into the component of support covering it
// within tol.
func clip(u, support interval.Union, tol float64) interval.Union {
	out := make([]interval.Interval, 0, u.Len())
	for iv := range u.All() {
		for s := range support.All() {
			if s.Covers(iv, tol) {
				iv.Lo = min(max(iv.Lo, s.Lo), s.Hi)
				iv.Hi = min(max(iv.Hi, s.Lo), s.Hi)
				break
			}
		}
		out = append(out, iv)
	}
	return interval.Normalize(out, 0)
}

func magnitude(u interval.Union) float64 {
	ext, ok := u.Extent()
	if !ok {
		return 1
	}
	return math.Max(1, math.Max(math.Abs(ext.Lo), math.Abs(ext.Hi)))
}
