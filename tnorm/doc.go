/*
Package tnorm provides triangular norms (t-norms) for aggregating membership
degrees.

A t-norm is a binary operation T on the unit interval [0,1] which is
commutative, associative, monotone in both arguments and has 1 as its
neutral element:

	T(a,1) = a
	T(a,b) = T(b,a)
	T(a,b) <= T(a,c)  for b <= c
	T(a,T(b,c)) = T(T(a,b),c)

T-norms generalize logical conjunction to degrees of possibility. Fuzzy
arithmetic uses them to combine the membership degrees of two operands under
the extension principle.

The package offers the common t-norms as package level values. They are plain,
immutable values and may be shared freely between goroutines:

	Minimum           min(a,b)                   (Zadeh)
	Product           a*b                        (algebraic product)
	Lukasiewicz       max(0, a+b-1)
	Drastic           b if a=1, a if b=1, else 0
	NilpotentMinimum  min(a,b) if a+b>1, else 0
	HamacherProduct   ab / (a+b-ab), 0 for a=b=0

The Schweizer-Sklar family is parametric and is created with SchweizerSklar(p).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package tnorm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fuzzy'
func tracer() tracing.Trace {
	return tracing.Select("fuzzy")
}
