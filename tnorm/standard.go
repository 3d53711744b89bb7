package tnorm

import (
	"fmt"
	"math"
)

// Minimum is Zadeh's t-norm min(a,b). It is the only idempotent t-norm and
// the largest of all t-norms.
var Minimum = TNorm{
	name:       "min",
	fn:         math.Min,
	idempotent: true,
}

// Product is the algebraic product a*b.
var Product = TNorm{
	name: "product",
	fn: func(a, b float64) float64 {
		return a * b
	},
}

// Lukasiewicz is the bounded difference max(0, a+b-1).
var Lukasiewicz = TNorm{
	name: "lukasiewicz",
	fn: func(a, b float64) float64 {
		return math.Max(0, a+b-1)
	},
}

// Drastic is the smallest of all t-norms.
var Drastic = TNorm{
	name: "drastic",
	fn:   drastic,
}

// NilpotentMinimum is Fodor's nilpotent minimum.
var NilpotentMinimum = TNorm{
	name: "nilpotent",
	fn: func(a, b float64) float64 {
		if a+b > 1 {
			return math.Min(a, b)
		}
		return 0
	},
}

// HamacherProduct is the Hamacher t-norm with parameter 0.
var HamacherProduct = TNorm{
	name: "hamacher",
	fn: func(a, b float64) float64 {
		if a == 0 && b == 0 {
			return 0
		}
		return a * b / (a + b - a*b)
	},
}

func drastic(a, b float64) float64 {
	switch {
	case a == 1:
		return b
	case b == 1:
		return a
	}
	return 0
}

// SchweizerSklar returns the Schweizer-Sklar t-norm with parameter p.
//
// The limit cases are the minimum (p = -Inf), the product (p = 0) and the
// drastic t-norm (p = +Inf). For all other p
//
//	T(a,b) = (max(0, a^p + b^p - 1))^(1/p)
//
// NaN is not a valid parameter.
func SchweizerSklar(p float64) (TNorm, error) {
	switch {
	case math.IsNaN(p):
		return TNorm{}, fmt.Errorf("%w: Schweizer-Sklar parameter is NaN", ErrInvalidParameter)
	case math.IsInf(p, -1):
		return Minimum, nil
	case p == 0:
		return Product, nil
	case math.IsInf(p, 1):
		return Drastic, nil
	}
	name := fmt.Sprintf("schweizer-sklar(%g)", p)
	if p < 0 {
		return TNorm{name: name, fn: func(a, b float64) float64 {
			if a == 0 || b == 0 {
				return 0
			}
			return math.Pow(math.Pow(a, p)+math.Pow(b, p)-1, 1/p)
		}}, nil
	}
	return TNorm{name: name, fn: func(a, b float64) float64 {
		s := math.Pow(a, p) + math.Pow(b, p) - 1
		if s <= 0 {
			return 0
		}
		return math.Min(1, math.Pow(s, 1/p))
	}}, nil
}
