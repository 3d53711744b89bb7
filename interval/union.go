package interval

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// Union is a finite union of closed intervals, stored as an ordered list of
// pairwise disjoint components with a strictly positive gap between
// neighbouring components.
//
// The zero value is the empty set.
type Union struct {
	ivs []Interval
}

// Normalize creates a Union from arbitrary intervals. Intervals are sorted by
// their lower bound; neighbours which overlap, touch or are at most gap apart
// are merged into one component. gap < 0 is treated as 0.
//
// The input slice is not modified.
func Normalize(ivs []Interval, gap float64) Union {
	if len(ivs) == 0 {
		return Union{}
	}
	if gap < 0 {
		gap = 0
	}
	sorted := slices.Clone(ivs)
	slices.SortFunc(sorted, func(a, b Interval) int {
		switch {
		case a.Lo < b.Lo:
			return -1
		case a.Lo > b.Lo:
			return 1
		case a.Hi < b.Hi:
			return -1
		case a.Hi > b.Hi:
			return 1
		}
		return 0
	})
	merged := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.Lo-cur.Hi <= gap {
			if iv.Hi > cur.Hi {
				cur.Hi = iv.Hi
			}
			continue
		}
		merged = append(merged, cur)
		cur = iv
	}
	merged = append(merged, cur)
	return Union{ivs: merged}
}

// Of creates a Union from intervals, merging overlapping or touching ones.
func Of(ivs ...Interval) Union {
	return Normalize(ivs, 0)
}

// Len returns the number of components.
func (u Union) Len() int {
	return len(u.ivs)
}

// IsEmpty reports whether u has no components.
func (u Union) IsEmpty() bool {
	return len(u.ivs) == 0
}

// At returns the i-th component.
func (u Union) At(i int) Interval {
	return u.ivs[i]
}

// Intervals returns a copy of the components.
func (u Union) Intervals() []Interval {
	return slices.Clone(u.ivs)
}

// All returns an iterator over the components in ascending order.
func (u Union) All() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for _, iv := range u.ivs {
			if !yield(iv) {
				return
			}
		}
	}
}

// Extent returns the hull of all components. ok is false for the empty set.
func (u Union) Extent() (extent Interval, ok bool) {
	if len(u.ivs) == 0 {
		return Interval{}, false
	}
	return Interval{Lo: u.ivs[0].Lo, Hi: u.ivs[len(u.ivs)-1].Hi}, true
}

// Validate checks the structural invariants of u: every component is a
// proper interval and neighbours are separated by a positive gap.
func (u Union) Validate() error {
	for i, iv := range u.ivs {
		if err := iv.Validate(); err != nil {
			return err
		}
		if i > 0 && u.ivs[i-1].Hi >= iv.Lo {
			return fmt.Errorf("%w: components %v and %v are not separated",
				ErrInvalidInterval, u.ivs[i-1], iv)
		}
	}
	return nil
}

// Find returns the index of the component containing x.
func (u Union) Find(x float64) (int, bool) {
	i := sort.Search(len(u.ivs), func(i int) bool {
		return u.ivs[i].Hi >= x
	})
	if i < len(u.ivs) && u.ivs[i].Lo <= x {
		return i, true
	}
	return i, false
}

// Contains reports whether x lies in one of the components.
func (u Union) Contains(x float64) bool {
	_, ok := u.Find(x)
	return ok
}

// Neighbours returns the index of the last component lying completely left
// of x and the index of the first component lying completely right of x.
// left is -1 and right is u.Len() if no such component exists.
func (u Union) Neighbours(x float64) (left, right int) {
	right = sort.Search(len(u.ivs), func(i int) bool {
		return u.ivs[i].Lo > x
	})
	left = sort.Search(len(u.ivs), func(i int) bool {
		return u.ivs[i].Hi >= x
	}) - 1
	return left, right
}

// Covers reports whether every component of v lies within a component of u,
// allowing for a tolerance tol at each bound.
func (u Union) Covers(v Union, tol float64) bool {
	for _, iv := range v.ivs {
		i, _ := u.Find(iv.Lo)
		if i < len(u.ivs) && u.ivs[i].Covers(iv, tol) {
			continue
		}
		if i > 0 && u.ivs[i-1].Covers(iv, tol) {
			continue
		}
		if i+1 < len(u.ivs) && u.ivs[i+1].Covers(iv, tol) {
			continue
		}
		return false
	}
	return true
}

// Join returns the union of u and v, merging components at most gap apart.
func (u Union) Join(v Union, gap float64) Union {
	if v.IsEmpty() && gap <= 0 {
		return u
	}
	all := make([]Interval, 0, len(u.ivs)+len(v.ivs))
	all = append(all, u.ivs...)
	all = append(all, v.ivs...)
	return Normalize(all, gap)
}

// Intersect returns the points common to u and v.
func (u Union) Intersect(v Union) Union {
	var out []Interval
	i, j := 0, 0
	for i < len(u.ivs) && j < len(v.ivs) {
		a, b := u.ivs[i], v.ivs[j]
		lo, hi := max(a.Lo, b.Lo), min(a.Hi, b.Hi)
		if lo <= hi {
			out = append(out, Interval{Lo: lo, Hi: hi})
		}
		if a.Hi < b.Hi {
			i++
		} else {
			j++
		}
	}
	return Normalize(out, 0)
}

// Combine applies a binary interval operation to every pair of components
// of u and v and returns the normalized union of the results.
func Combine(u, v Union, op func(a, b Interval) Interval, gap float64) Union {
	if u.IsEmpty() || v.IsEmpty() {
		return Union{}
	}
	out := make([]Interval, 0, len(u.ivs)*len(v.ivs))
	for _, a := range u.ivs {
		for _, b := range v.ivs {
			out = append(out, op(a, b))
		}
	}
	return Normalize(out, gap)
}

// Map applies f to every component and normalizes the result.
func (u Union) Map(f func(Interval) Interval, gap float64) Union {
	out := make([]Interval, len(u.ivs))
	for i, iv := range u.ivs {
		out[i] = f(iv)
	}
	return Normalize(out, gap)
}

// Translate shifts every component by d.
func (u Union) Translate(d float64) Union {
	out := make([]Interval, len(u.ivs))
	for i, iv := range u.ivs {
		out[i] = iv.Translate(d)
	}
	return Union{ivs: out}
}

// Negate mirrors u at 0.
func (u Union) Negate() Union {
	n := len(u.ivs)
	out := make([]Interval, n)
	for i, iv := range u.ivs {
		out[n-1-i] = iv.Negate()
	}
	return Union{ivs: out}
}

// Equal compares u and v component-wise with tolerance tol.
func (u Union) Equal(v Union, tol float64) bool {
	if len(u.ivs) != len(v.ivs) {
		return false
	}
	for i := range u.ivs {
		if !u.ivs[i].Equal(v.ivs[i], tol) {
			return false
		}
	}
	return true
}

func (u Union) String() string {
	if len(u.ivs) == 0 {
		return "{}"
	}
	var b strings.Builder
	for i, iv := range u.ivs {
		if i > 0 {
			b.WriteString(" ∪ ")
		}
		b.WriteString(iv.String())
	}
	return b.String()
}
