package tnorm

import (
	"fmt"
	"strings"
)

// Lookup finds a t-norm by name. Names are case-insensitive. The parametric
// Schweizer-Sklar t-norm is selected by "sklar" or "schweizer-sklar" and
// expects exactly one parameter.
func Lookup(name string, params ...float64) (TNorm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "min", "minimum", "zadeh":
		return Minimum, nil
	case "product", "prod", "algebraic":
		return Product, nil
	case "lukasiewicz", "łukasiewicz", "bounded":
		return Lukasiewicz, nil
	case "drastic":
		return Drastic, nil
	case "nilpotent", "nilpotent-min", "nilpotent-minimum":
		return NilpotentMinimum, nil
	case "hamacher":
		return HamacherProduct, nil
	case "sklar", "schweizer-sklar":
		if len(params) != 1 {
			return TNorm{}, fmt.Errorf("%w: %s expects one parameter, got %d",
				ErrInvalidParameter, n, len(params))
		}
		return SchweizerSklar(params[0])
	}
	return TNorm{}, fmt.Errorf("%w: %q", ErrUnknownTNorm, name)
}

// Names lists the names accepted by Lookup, one per t-norm.
func Names() []string {
	return []string{"min", "product", "lukasiewicz", "drastic", "nilpotent", "hamacher", "sklar"}
}
