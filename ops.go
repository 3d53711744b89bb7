package fuzzy

import (
	"fmt"

	"github.com/npillmayer/fuzzy/interval"
)

// Operator is a binary arithmetic operation on fuzzy sets.
type Operator int

const (
	// OpAdd denotes addition, A+B.
	OpAdd Operator = iota
	// OpSubtract denotes subtraction, A-B.
	OpSubtract
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// ParseOperator returns the operator for a name as returned by
// Operator.String, or for "+", "-" and "sub".
func ParseOperator(name string) (Operator, error) {
	switch name {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "sub", "-":
		return OpSubtract, nil
	}
	return OpAdd, fmt.Errorf("%w: unknown operator %q", ErrIllegalArguments, name)
}

// interval returns the interval arithmetic counterpart of op.
func (op Operator) interval() func(a, b interval.Interval) interval.Interval {
	switch op {
	case OpSubtract:
		return interval.Interval.Sub
	default:
		return interval.Interval.Add
	}
}

// Add returns the fuzzy sum A+B according to the extension principle, with
// membership degrees combined by the configured t-norm.
//
// Adding Crisp(c) to A translates A by c for every t-norm. Add is commutative.
func Add(a, b Set, cfg Config) (Set, error) {
	return Apply(OpAdd, a, b, cfg)
}

// Subtract returns the fuzzy difference A-B according to the extension
// principle. It is equivalent to Add(a, b.Negate(), cfg).
func Subtract(a, b Set, cfg Config) (Set, error) {
	return Apply(OpSubtract, a, b, cfg)
}

// Apply computes op(A,B).
//
// Both operands are cut at a shared grid of levels, pairs of cuts are combined
// component-wise by interval arithmetic and the results are assigned the level
// T(alpha_a, alpha_b). Intervals landing on the same level are merged, and the
// family of cuts is repaired to be nested from the top level downwards. If
// repair needs to widen a cut beyond the support of the result by more than
// the configured tolerance, ErrNestingRepair is returned. A t-norm producing
// degrees outside of [0,1] results in ErrDomain. Operands are verified with
// Check first, e.g. a crisp set of a non-finite number yields
// ErrInvalidFuzzySet.
func Apply(op Operator, a, b Set, cfg Config) (Set, error) {
	if op != OpAdd && op != OpSubtract {
		return Set{}, fmt.Errorf("%w: %s", ErrIllegalArguments, op)
	}
	if err := cfg.Validate(); err != nil {
		return Set{}, err
	}
	if a.IsEmpty() || b.IsEmpty() {
		return Set{}, ErrEmptySet
	}
	for _, s := range []Set{a, b} {
		if err := s.Check(); err != nil {
			T().Errorf("%s: invalid operand %v: %v", op, s, err)
			return Set{}, err
		}
	}
	return extend(op, a, b, cfg.normalized())
}
