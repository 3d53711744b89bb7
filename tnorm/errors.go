package tnorm

import "errors"

var (
	// ErrDomain signals a membership degree outside of [0,1], either as an
	// argument to a t-norm or as its result.
	ErrDomain = errors.New("tnorm: membership degree outside [0,1]")
	// ErrUnknownTNorm signals a lookup for a t-norm name which is not known.
	ErrUnknownTNorm = errors.New("tnorm: unknown t-norm")
	// ErrInvalidParameter signals an unusable parameter for a parametric t-norm.
	ErrInvalidParameter = errors.New("tnorm: invalid parameter")
)
