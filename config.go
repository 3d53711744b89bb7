package fuzzy

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/fuzzy/levelcut"
	"github.com/npillmayer/fuzzy/tnorm"
)

const (
	// DefaultResolution is the number of uniformly spaced levels in (0,1]
	// used for decomposition, if not configured otherwise.
	DefaultResolution = 100
	// MaxResolution limits the grid size.
	MaxResolution = 1 << 16
	// DefaultMergeGap is the distance below which neighbouring intervals of a
	// cut are merged.
	DefaultMergeGap = 1e-9
	// DefaultTolerance is the relative numerical tolerance for nesting checks
	// and repair.
	DefaultTolerance = 1e-9
)

// Pairing selects which pairs of level-cuts are combined by an operation.
type Pairing int

const (
	// Diagonal pairs cuts of equal level, plus the top cut of either operand
	// with every cut of the other one.
	Diagonal Pairing = iota
	// Full pairs every cut of one operand with every cut of the other one.
	Full
)

func (p Pairing) String() string {
	switch p {
	case Diagonal:
		return "diagonal"
	case Full:
		return "full"
	}
	return fmt.Sprintf("Pairing(%d)", int(p))
}

// ParsePairing returns the pairing mode for a name as returned by
// Pairing.String.
func ParsePairing(name string) (Pairing, error) {
	switch name {
	case "diagonal", "":
		return Diagonal, nil
	case "full":
		return Full, nil
	}
	return Diagonal, fmt.Errorf("%w: unknown pairing %q", ErrIllegalArguments, name)
}

// Config parameterizes construction of and arithmetic on fuzzy sets.
//
// The zero value is usable: it selects the minimum t-norm, diagonal pairing,
// default merge gap and tolerance, and the union of the operands' native grids.
type Config struct {
	// Resolution is the number of uniform levels of the alpha grid. 0 selects
	// the native levels of the operands.
	Resolution int
	// TNorm combines membership degrees of operands.
	TNorm tnorm.TNorm
	// Pairing selects the cut pairs combined by operations.
	Pairing Pairing
	// MergeGap is the distance below which neighbouring intervals are merged.
	MergeGap float64
	// Tolerance is the relative numerical tolerance for nesting repair.
	Tolerance float64
	// Grids caches uniform grids; may be nil.
	Grids *GridCache
}

// DefaultConfig returns a configuration with a grid of DefaultResolution
// levels and the minimum t-norm.
func DefaultConfig() Config {
	return Config{
		Resolution: DefaultResolution,
		TNorm:      tnorm.Minimum,
		Pairing:    Diagonal,
		MergeGap:   DefaultMergeGap,
		Tolerance:  DefaultTolerance,
	}
}

func (cfg Config) normalized() Config {
	if cfg.TNorm.IsZero() {
		cfg.TNorm = tnorm.Minimum
	}
	if cfg.MergeGap == 0 {
		cfg.MergeGap = DefaultMergeGap
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = DefaultTolerance
	}
	return cfg
}

// Validate checks a configuration for consistency.
func (cfg Config) Validate() error {
	cfg = cfg.normalized()
	if cfg.Resolution < 0 || cfg.Resolution > MaxResolution {
		return fmt.Errorf("%w: resolution %d out of range [0,%d]", ErrIllegalArguments,
			cfg.Resolution, MaxResolution)
	}
	if cfg.Pairing != Diagonal && cfg.Pairing != Full {
		return fmt.Errorf("%w: %s", ErrIllegalArguments, cfg.Pairing)
	}
	if !(cfg.MergeGap >= 0) || math.IsInf(cfg.MergeGap, 0) {
		return fmt.Errorf("%w: merge gap %g", ErrIllegalArguments, cfg.MergeGap)
	}
	if !(cfg.Tolerance > 0) || cfg.Tolerance >= 1 {
		return fmt.Errorf("%w: tolerance %g", ErrIllegalArguments, cfg.Tolerance)
	}
	return nil
}

// uniform returns the uniform grid of the configured resolution, from the
// grid cache if present.
func (cfg Config) uniform() levelcut.Grid {
	if cfg.Resolution == 0 {
		return nil
	}
	if cfg.Grids != nil {
		return cfg.Grids.Uniform(cfg.Resolution)
	}
	return levelcut.Uniform(cfg.Resolution)
}
