package polynomial

import (
	"fmt"
)

// Operand is an argument of the binary operations of this package.
// It is implemented by *Polynomial and Coefficients.
type Operand interface {
	coefficients() ([]float64, error)
}

// Coefficients is a raw coefficient sequence in descending degree order.
// It can be used instead of a *Polynomial on either side of Add, Sub and Mul.
// It does not need to be normalized: the result of the operation is.
type Coefficients []float64

func (c Coefficients) coefficients() ([]float64, error) {
	if c == nil {
		return nil, fmt.Errorf("coefficients are nil: %w", ErrInvalidArgument)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("coefficients are empty: %w", ErrInvalidArgument)
	}
	return c, nil
}

func (p *Polynomial) coefficients() ([]float64, error) {
	if p == nil {
		return nil, fmt.Errorf("polynomial is nil: %w", ErrInvalidArgument)
	}
	return p.values(), nil
}

// operands returns the coefficients of lhs and rhs, or an error naming the
// operation and the first absent operand.
func operands(op string, lhs, rhs Operand) (l, r []float64, err error) {

	if lhs == nil {
		return nil, nil, fmt.Errorf("cannot %s: lhs is nil: %w", op, ErrInvalidArgument)
	}

	if rhs == nil {
		return nil, nil, fmt.Errorf("cannot %s: rhs is nil: %w", op, ErrInvalidArgument)
	}

	if l, err = lhs.coefficients(); err != nil {
		return nil, nil, fmt.Errorf("cannot %s: lhs: %w", op, err)
	}

	if r, err = rhs.coefficients(); err != nil {
		return nil, nil, fmt.Errorf("cannot %s: rhs: %w", op, err)
	}

	return
}
