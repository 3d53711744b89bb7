package levelcut

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/fuzzy/interval"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var triangle = []Breakpoint{{0, 0}, {2, 1}, {4, 0}}

var twoHumps = []Breakpoint{{0, 0}, {1, 1}, {2, 0}, {3, 0}, {4, 1}, {5, 0}}

func TestValidateBreakpoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()
	//
	valid := [][]Breakpoint{
		triangle,
		twoHumps,
		{{3, 0}, {3, 1}, {3, 0}},                   // crisp
		{{0, 0}, {1, 1}, {2, 1}, {3, 0}},           // trapezoid
		{{0, 0}, {1, 0.6}, {2, 0}},                 // subnormal
		{{0, 0}, {1, 1}, {1.5, 0}, {2.5, 1}, {3, 0}}, // humps touching at 0
	}
	for i, points := range valid {
		if err := ValidateBreakpoints(points); err != nil {
			t.Errorf("expected breakpoints #%d to be valid, have %v", i, err)
		}
	}
	invalid := [][]Breakpoint{
		{{0, 0}},
		{{0, 0}, {1, 0}},
		{{0, 0.5}, {1, 1}, {2, 0}},
		{{0, 0}, {1, 1}, {2, 0.2}},
		{{0, 0}, {2, 1}, {1, 0}},
		{{0, 0}, {1, 1.2}, {2, 0}},
		{{0, 0}, {1, 1}, {2, 0.4}, {3, 1}, {4, 0}}, // valley above 0
	}
	for i, points := range invalid {
		if err := ValidateBreakpoints(points); !errors.Is(err, ErrInvalidBreakpoints) {
			t.Errorf("expected breakpoints #%d to be invalid, have err=%v", i, err)
		}
	}
}

func TestDecomposeTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()
	//
	cuts, err := Decompose(triangle, Uniform(4), 0)
	if err != nil {
		t.Fatal(err)
	}
	expected := [][]interval.Interval{
		{{Lo: 2, Hi: 2}},
		{{Lo: 1.5, Hi: 2.5}},
		{{Lo: 1, Hi: 3}},
		{{Lo: 0.5, Hi: 3.5}},
	}
	if len(cuts) != len(expected) {
		t.Fatalf("expected %d cuts, have %d", len(expected), len(cuts))
	}
	for i, c := range cuts {
		if diff := cmp.Diff(expected[i], c.Components.Intervals(), approx); diff != "" {
			t.Errorf("cut at %g differs (-want +got):\n%s", c.Alpha, diff)
		}
		if !c.IsConvex() {
			t.Errorf("expected cut at %g to be convex", c.Alpha)
		}
	}
	if err := CheckNesting(cuts, 0); err != nil {
		t.Errorf("decomposition is not nested: %v", err)
	}
}

func TestDecomposeMultimodal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()
	//
	support := Support(twoHumps, 0)
	want := []interval.Interval{{Lo: 0, Hi: 2}, {Lo: 3, Hi: 5}}
	if diff := cmp.Diff(want, support.Intervals(), approx); diff != "" {
		t.Errorf("support differs (-want +got):\n%s", diff)
	}
	cuts, err := Decompose(twoHumps, Uniform(10), 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cuts {
		if c.Components.Len() != 2 {
			t.Errorf("expected 2 components at level %g, have %v", c.Alpha, c.Components)
		}
	}
	half, err := CutAt(twoHumps, 0.5, 0)
	if err != nil {
		t.Fatal(err)
	}
	want = []interval.Interval{{Lo: 0.5, Hi: 1.5}, {Lo: 3.5, Hi: 4.5}}
	if diff := cmp.Diff(want, half.Components.Intervals(), approx); diff != "" {
		t.Errorf("cut at 0.5 differs (-want +got):\n%s", diff)
	}
}

func TestHumpsMergeBelowValley(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()
	//
	points := []Breakpoint{{0, 0}, {1, 1}, {2, 0.4}, {3, 1}, {4, 0}}
	cuts, err := Decompose(points, Grid{1, 0.5, 0.4, 0.3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	counts := []int{2, 2, 1, 1}
	for i, c := range cuts {
		if c.Components.Len() != counts[i] {
			t.Errorf("expected %d components at %g, have %v", counts[i], c.Alpha, c.Components)
		}
	}
	// a merge gap closes narrow valleys early
	points = []Breakpoint{{0, 0}, {1, 1}, {1.5, 0}, {2.5, 1}, {3, 0}}
	cuts, err = Decompose(points, Grid{0.5, 0.1}, 0.2)
	if err != nil {
		t.Fatal(err)
	}
	if cuts[0].Components.Len() != 2 || cuts[1].Components.Len() != 1 {
		t.Errorf("expected components 2 and 1, have %v and %v", cuts[0].Components, cuts[1].Components)
	}
}

func TestDecomposeSubnormal(t *testing.T) {
	points := []Breakpoint{{0, 0}, {1, 0.6}, {2, 0}}
	cuts, err := Decompose(points, Uniform(10).With(0.6), 0)
	if err != nil {
		t.Fatal(err)
	}
	if cuts[0].Alpha != 0.6 {
		t.Errorf("expected top level 0.6, have %g", cuts[0].Alpha)
	}
	if len(cuts) != 6 {
		t.Errorf("expected 6 levels up to 0.6, have %d", len(cuts))
	}
}

func TestDecomposeRejects(t *testing.T) {
	if _, err := Decompose(triangle, Grid{0.5, 0.7}, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected invalid level for ascending grid, have %v", err)
	}
	if _, err := Decompose([]Breakpoint{{1, 0}, {0, 1}}, Uniform(2), 0); !errors.Is(err, ErrInvalidBreakpoints) {
		t.Errorf("expected invalid breakpoints, have %v", err)
	}
	if _, err := CutAt(triangle, 0, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected invalid level 0, have %v", err)
	}
}

func TestCheckNesting(t *testing.T) {
	top, _ := New(1, interval.Point(2))
	mid, _ := New(0.5, interval.Interval{Lo: 1, Hi: 3})
	off, _ := New(0.5, interval.Interval{Lo: 2.5, Hi: 3})
	if err := CheckNesting([]LevelCut{top, mid}, 0); err != nil {
		t.Errorf("expected nested cuts, have %v", err)
	}
	if err := CheckNesting([]LevelCut{top, off}, 0); !errors.Is(err, ErrNotNested) {
		t.Errorf("expected nesting violation, have %v", err)
	}
	if err := CheckNesting([]LevelCut{mid, top}, 0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected level order violation, have %v", err)
	}
	if _, err := New(0, interval.Point(1)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected level 0 to be rejected, have %v", err)
	}
	if _, err := New(0.5, interval.Interval{Lo: 2, Hi: 1}); !errors.Is(err, interval.ErrInvalidInterval) {
		t.Errorf("expected invalid interval, have %v", err)
	}
}

func TestReconstructTriangle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()
	//
	cuts, _ := Decompose(triangle, Uniform(4), 0)
	points := Reconstruct(Support(triangle, 0), cuts)
	want := []Breakpoint{{0, 0}, {0.5, 0.25}, {1, 0.5}, {1.5, 0.75}, {2, 1},
		{2.5, 0.75}, {3, 0.5}, {3.5, 0.25}, {4, 0}}
	if diff := cmp.Diff(want, points, approx); diff != "" {
		t.Fatalf("reconstruction differs (-want +got):\n%s", diff)
	}
	for _, x := range []float64{-1, 0.25, 1.2, 2, 3.9, 5} {
		expected := Evaluate(triangle, x)
		if got := Evaluate(points, x); cmp.Diff(expected, got, approx) != "" {
			t.Errorf("membership at %g: expected %g, have %g", x, expected, got)
		}
	}
}

func TestReconstructVerticalEdges(t *testing.T) {
	crisp, _ := New(1, interval.Point(3))
	points := Reconstruct(interval.Of(interval.Point(3)), []LevelCut{crisp})
	if diff := cmp.Diff([]Breakpoint{{3, 0}, {3, 1}, {3, 0}}, points); diff != "" {
		t.Errorf("crisp reconstruction differs (-want +got):\n%s", diff)
	}
	if Evaluate(points, 3) != 1 || Evaluate(points, 3.1) != 0 {
		t.Errorf("crisp membership wrong")
	}
	top, _ := New(1, interval.Point(2))
	low, _ := New(0.5, interval.Interval{Lo: 1, Hi: 3})
	points = Reconstruct(low.Components, []LevelCut{top, low})
	want := []Breakpoint{{1, 0}, {1, 0.5}, {2, 1}, {3, 0.5}, {3, 0}}
	if diff := cmp.Diff(want, points, approx); diff != "" {
		t.Errorf("reconstruction differs (-want +got):\n%s", diff)
	}
	if mu := Evaluate(points, 1.5); cmp.Diff(0.75, mu, approx) != "" {
		t.Errorf("expected membership 0.75 at 1.5, have %g", mu)
	}
}

func TestReconstructInteriorEdge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()
	//
	top, _ := New(1, interval.Interval{Lo: 1, Hi: 2})
	foot, _ := New(0.5, interval.Interval{Lo: 1, Hi: 2})
	low, _ := New(0.25, interval.Interval{Lo: 0.5, Hi: 2.5})
	support := interval.Of(interval.Interval{Lo: 0, Hi: 3})
	points := Reconstruct(support, []LevelCut{top, foot, low})
	want := []Breakpoint{{0, 0}, {0.5, 0.25}, {1, 0.5}, {1, 1}, {2, 1}, {2, 0.5},
		{2.5, 0.25}, {3, 0}}
	if diff := cmp.Diff(want, points, approx); diff != "" {
		t.Fatalf("reconstruction differs (-want +got):\n%s", diff)
	}
	for _, x := range []float64{0.99, 1, 1.5, 2, 2.01} {
		expected := Membership(support, []LevelCut{top, foot, low}, x)
		if got := Evaluate(points, x); cmp.Diff(expected, got, approx) != "" {
			t.Errorf("membership at %g: expected %g, have %g", x, expected, got)
		}
	}
	if mu := Evaluate(points, 0.99); cmp.Diff(0.495, mu, approx) != "" {
		t.Errorf("expected membership 0.495 left of the edge, have %g", mu)
	}
}

func TestMembershipValley(t *testing.T) {
	support := interval.Of(interval.Interval{Lo: 0, Hi: 4})
	top, _ := New(1, interval.Point(1), interval.Point(3))
	low, _ := New(0.5, interval.Interval{Lo: 0.5, Hi: 3.5})
	cuts := []LevelCut{top, low}
	testCases := []struct {
		x, mu float64
	}{
		{1, 1}, {3, 1}, {2, 0.5}, {1.5, 0.75}, {0.25, 0.25}, {4.5, 0},
	}
	for _, tc := range testCases {
		if mu := Membership(support, cuts, tc.x); cmp.Diff(tc.mu, mu, approx) != "" {
			t.Errorf("membership at %g: expected %g, have %g", tc.x, tc.mu, mu)
		}
	}
}

func TestGrids(t *testing.T) {
	g := MergeGrids(Uniform(4), Uniform(2), Grid{0.6, 0, 1.5})
	if diff := cmp.Diff(Grid{1, 0.75, 0.6, 0.5, 0.25}, g); diff != "" {
		t.Errorf("merged grid differs (-want +got):\n%s", diff)
	}
	if err := g.Validate(); err != nil {
		t.Error(err)
	}
	if !g.Contains(0.6) || g.Contains(0.7) {
		t.Errorf("grid containment wrong for %v", g)
	}
	if g.Top() != 1 || (Grid{}).Top() != 0 {
		t.Errorf("unexpected top level")
	}
	if len(Uniform(0)) != 0 || len(Uniform(100)) != 100 {
		t.Errorf("unexpected uniform grid sizes")
	}
	if err := (Grid{1, 1}).Validate(); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected duplicate levels to be rejected")
	}
}
