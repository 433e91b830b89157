package polynomial

import (
	"fmt"

	"github.com/numkit/numkit/utils"
)

// Add returns lhs + rhs.
// Coefficients are aligned on the constant term, so operands of different
// degrees can be added. The result is normalized, hence its degree can be
// lower than the degree of the operands if leading terms cancel out.
func Add(lhs, rhs Operand) (*Polynomial, error) {

	l, r, err := operands("Add", lhs, rhs)
	if err != nil {
		return nil, err
	}

	sum := utils.AlignTail(l, max(len(l), len(r)))
	utils.AddTail(sum, r)

	return newPolynomial(normalize(sum)), nil
}

// Sub returns lhs - rhs.
// Coefficients are aligned on the constant term, see Add.
func Sub(lhs, rhs Operand) (*Polynomial, error) {

	l, r, err := operands("Sub", lhs, rhs)
	if err != nil {
		return nil, err
	}

	diff := utils.AlignTail(l, max(len(l), len(r)))
	utils.SubTail(diff, r)

	return newPolynomial(normalize(diff)), nil
}

// Mul returns lhs * rhs.
func Mul(lhs, rhs Operand) (*Polynomial, error) {

	l, r, err := operands("Mul", lhs, rhs)
	if err != nil {
		return nil, err
	}

	prod := make([]float64, len(l)+len(r)-1)

	for i := range l {

		if isZero(l[i]) {
			continue
		}

		for j := range r {
			prod[i+j] += l[i] * r[j]
		}
	}

	return newPolynomial(normalize(prod)), nil
}

// MulScalar returns p * scalar.
func MulScalar(p *Polynomial, scalar float64) (*Polynomial, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot MulScalar: p is nil: %w", ErrInvalidArgument)
	}
	return newPolynomial(normalize(utils.ScaleSlice(p.values(), scalar))), nil
}

// ScalarMul returns scalar * p, which equals MulScalar(p, scalar).
func ScalarMul(scalar float64, p *Polynomial) (*Polynomial, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot ScalarMul: p is nil: %w", ErrInvalidArgument)
	}
	return MulScalar(p, scalar)
}

// Neg returns -p.
func Neg(p *Polynomial) (*Polynomial, error) {
	if p == nil {
		return nil, fmt.Errorf("cannot Neg: p is nil: %w", ErrInvalidArgument)
	}
	return newPolynomial(normalize(utils.NegateSlice(p.values()))), nil
}

// Add returns p + op. See the package function Add.
func (p *Polynomial) Add(op Operand) (*Polynomial, error) {
	return Add(p, op)
}

// Sub returns p - op. See the package function Sub.
func (p *Polynomial) Sub(op Operand) (*Polynomial, error) {
	return Sub(p, op)
}

// Mul returns p * op. See the package function Mul.
func (p *Polynomial) Mul(op Operand) (*Polynomial, error) {
	return Mul(p, op)
}

// MulScalar returns p * scalar.
func (p *Polynomial) MulScalar(scalar float64) (*Polynomial, error) {
	return MulScalar(p, scalar)
}

// Neg returns -p.
func (p *Polynomial) Neg() (*Polynomial, error) {
	return Neg(p)
}
