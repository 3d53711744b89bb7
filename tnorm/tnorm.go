package tnorm

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math"
)

// TNorm is a named t-norm. The zero value is not a usable t-norm; clients
// use one of the package level values or SchweizerSklar.
//
// A TNorm is a value type without any mutable state.
type TNorm struct {
	name       string
	fn         func(a, b float64) float64
	idempotent bool
}

// New creates a t-norm from a function. fn must satisfy the t-norm axioms on
// the unit square; New does not check this. If idempotent is true, clients may
// rely on T(a,a) = a.
func New(name string, fn func(a, b float64) float64, idempotent bool) TNorm {
	return TNorm{name: name, fn: fn, idempotent: idempotent}
}

// Name returns the name of the t-norm, e.g. "min".
func (t TNorm) Name() string {
	return t.name
}

func (t TNorm) String() string {
	if t.fn == nil {
		return "tnorm(<none>)"
	}
	return "tnorm(" + t.name + ")"
}

// IsZero reports whether t is the zero value.
func (t TNorm) IsZero() bool {
	return t.fn == nil
}

// Idempotent reports whether T(a,a) = a holds for all a. Of the standard
// t-norms only Minimum is idempotent.
func (t TNorm) Idempotent() bool {
	return t.idempotent
}

// Apply aggregates the membership degrees a and b.
//
// Arguments outside of [0,1] are a caller error and result in ErrDomain. The
// same holds for results outside of [0,1], which may only occur for
// user-defined t-norms.
func (t TNorm) Apply(a, b float64) (float64, error) {
	if t.fn == nil {
		return 0, fmt.Errorf("%w: zero value t-norm", ErrUnknownTNorm)
	}
	if !inUnit(a) || !inUnit(b) {
		return 0, fmt.Errorf("%w: %s(%g, %g)", ErrDomain, t.name, a, b)
	}
	r := t.fn(a, b)
	if !inUnit(r) {
		tracer().Errorf("t-norm %s(%g,%g) yields %g", t.name, a, b, r)
		return 0, fmt.Errorf("%w: %s(%g, %g) = %g", ErrDomain, t.name, a, b, r)
	}
	return r, nil
}

// Diagonal returns T(a,a), the level two equal degrees aggregate to.
func (t TNorm) Diagonal(a float64) (float64, error) {
	return t.Apply(a, a)
}

func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}
