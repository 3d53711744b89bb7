/*
Package fuzzy implements arithmetic on fuzzy numbers.

Fuzzy numbers

A fuzzy number is a quantity whose value is not a single real number but a
membership function over the reals, expressing degrees of possibility. A
membership of 1 marks fully possible values, a membership of 0 impossible
ones. Fuzzy numbers model imprecision which is better described by
possibility distributions than by probability distributions, e.g. expert
estimates like "about 2, certainly between 0 and 4".

This package supports both convex fuzzy numbers (a single hump, like
triangular or trapezoidal numbers) and nonconvex, multimodal fuzzy sets with
several disjoint humps, each representing a plausible region of value.

Level-cuts

Internally a fuzzy set is represented as a stack of nested level-cuts. The
level-cut at level alpha is the set of values with membership at least alpha;
for multimodal sets it is a union of disjoint intervals. Higher levels have
smaller cuts:

	alpha_i < alpha_j  =>  cut(alpha_j) ⊆ cut(alpha_i)

Below all levels lies the support, the closure of all values with positive
membership.

Arithmetic

Addition and subtraction follow the extension principle: the membership of
z in A+B is the supremum, over all x+y=z, of T(mu_A(x), mu_B(y)) for a t-norm
T. On level-cuts this becomes interval arithmetic. Both operands are cut at a
shared grid of levels, cuts are combined pairwise, the results are keyed by
the level the t-norm assigns to them, and a nested stack is restored before
the membership function of the result is reconstructed.

	a, _ := fuzzy.Triangular(0, 2, 4, fuzzy.DefaultConfig())
	b := fuzzy.Crisp(3)
	sum, _ := fuzzy.Add(a, b, fuzzy.DefaultConfig())   // triangle 3, 5, 7

All values are immutable; every operation returns a new Set. Operations are
pure functions of their arguments and may run concurrently without locking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package fuzzy

import (
	"github.com/npillmayer/fuzzy/tnorm"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FuzzyError is an error type for the fuzzy module
type FuzzyError string

func (e FuzzyError) Error() string {
	return string(e)
}

// ErrInvalidFuzzySet is flagged whenever breakpoints or level-cuts do not
// describe a valid fuzzy set. It wraps the more specific cause.
const ErrInvalidFuzzySet = FuzzyError("invalid fuzzy set")

// ErrNestingRepair signals that the level-cuts computed by an operation could
// not be repaired into a nested stack within tolerance. Clients may retry
// with a finer grid.
const ErrNestingRepair = FuzzyError("nesting repair failed; refine the alpha grid")

// ErrEmptySet signals an operation on, or resulting in, a fuzzy set with no
// positive membership anywhere.
const ErrEmptySet = FuzzyError("fuzzy set is empty")

// ErrBuilderCompleted signals that a set builder has already completed a set and
// it's illegal to further add cuts.
const ErrBuilderCompleted = FuzzyError("forbidden to add cuts; set has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = FuzzyError("illegal arguments")

// ErrDomain signals a membership degree outside of [0,1].
var ErrDomain = tnorm.ErrDomain
