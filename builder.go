package fuzzy

import (
	"fmt"

	"github.com/npillmayer/fuzzy/interval"
	"github.com/npillmayer/fuzzy/levelcut"
)

// Builder stages level-cuts one at a time and finalizes them into a Set.
//
// Cuts may be added in any order; nesting is verified when Set is called.
// The empty instance is a valid builder using the default configuration, but
// clients may use NewBuilder.
type Builder struct {
	cfg   Config
	cuts  []levelcut.LevelCut
	err   error
	done  bool
	dirty bool
	set   Set
}

// NewBuilder creates a new and empty set builder.
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// AddCut stages the level-cut at level alpha, consisting of the union of ivs.
func (b *Builder) AddCut(alpha float64, ivs ...interval.Interval) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrBuilderCompleted
	}
	c, err := levelcut.New(alpha, ivs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFuzzySet, err)
	}
	for _, staged := range b.cuts {
		if staged.Alpha == c.Alpha {
			return fmt.Errorf("%w: duplicate level %g", ErrInvalidFuzzySet, alpha)
		}
	}
	b.cuts = append(b.cuts, c)
	b.dirty = true
	return nil
}

// Set returns the fuzzy set built from all staged cuts.
//
// It is illegal to continue adding cuts after Set has been called, but Set
// may be called multiple times.
func (b *Builder) Set() (Set, error) {
	if b == nil {
		return Set{}, ErrIllegalArguments
	}
	if b.dirty || !b.done {
		b.set, b.err = FromCuts(b.cuts, b.cfg)
		b.dirty = false
	}
	b.done = true
	if b.err != nil {
		T().Debugf("set builder: %v", b.err)
	}
	return b.set, b.err
}

// Reset drops the staged cuts and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.cuts = nil
	b.err = nil
	b.done = false
	b.dirty = false
	b.set = Set{}
}
