package levelcut

import "errors"

var (
	// ErrInvalidBreakpoints signals breakpoints which do not describe a valid
	// membership function.
	ErrInvalidBreakpoints = errors.New("levelcut: invalid breakpoints")
	// ErrInvalidLevel signals a level outside of (0,1] or a grid which is not
	// strictly descending.
	ErrInvalidLevel = errors.New("levelcut: invalid level")
	// ErrNotNested signals a family of cuts violating the nesting invariant.
	ErrNotNested = errors.New("levelcut: cuts are not nested")
)
