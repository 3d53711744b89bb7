/*
Package interval implements closed real intervals and finite unions of
disjoint closed intervals.

An Interval [lo,hi] with lo <= hi is the atomic operand of interval
arithmetic: addition is [a.lo+b.lo, a.hi+b.hi], subtraction is
[a.lo-b.hi, a.hi-b.lo]. A degenerate interval [c,c] is a crisp number, and
arithmetic on degenerate intervals behaves like arithmetic on reals.

A Union is an ordered list of pairwise disjoint intervals with a strictly
positive gap between neighbours. Unions are produced by Normalize, which sorts
its input and merges every pair of intervals which overlap, touch or are
separated by no more than a given merge gap. Unions are values; no operation
modifies a Union in place.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package interval
