/*
Package levelcut converts between piecewise-linear membership functions and
families of level-cuts.

A membership function is described by an ordered list of breakpoints (x, mu),
interpolated linearly. The level-cut (alpha-cut) of a membership function at
level alpha is the set

	{ x : mu(x) >= alpha }

which, for a piecewise-linear function, is a finite union of disjoint closed
intervals. A convex fuzzy number has exactly one interval per level; a
multimodal one may have several, and humps merge into one interval at levels
below the point where their tails overlap.

Decompose computes level-cuts for a descending grid of levels. It works from
the highest level downwards and always joins the previous level's cut into the
current one, so the result is nested by construction:

	alpha_i < alpha_j  =>  cut(alpha_j) ⊆ cut(alpha_i)

Reconstruct goes the other way and produces breakpoints from a support and a
family of nested cuts. The membership of a point is the highest level whose
cut contains it, interpolated linearly towards the boundaries of the next
higher level. The result is an approximation whose accuracy depends on the
density of the grid only.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package levelcut

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fuzzy'
func tracer() tracing.Trace {
	return tracing.Select("fuzzy")
}
