package fuzzy

import (
	"fmt"

	"github.com/npillmayer/fuzzy/levelcut"
)

// Check verifies the invariants of a set: a valid support, nested cuts with
// levels strictly descending in (0,1], and a support covering the lowest cut.
// It is intended for tests and debugging.
func (s Set) Check() error {
	if s.IsEmpty() {
		return ErrEmptySet
	}
	if err := s.support.Validate(); err != nil {
		return fmt.Errorf("%w: support: %w", ErrInvalidFuzzySet, err)
	}
	tol := s.tol * magnitude(s.support)
	if err := levelcut.CheckNesting(s.cuts, tol); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFuzzySet, err)
	}
	lowest := s.cuts[len(s.cuts)-1]
	if !s.support.Covers(lowest.Components, tol) {
		return fmt.Errorf("%w: support %s does not cover cut %s", ErrInvalidFuzzySet, s.support, lowest)
	}
	if len(s.points) < 2 {
		return fmt.Errorf("%w: missing membership function", ErrInvalidFuzzySet)
	}
	return nil
}
