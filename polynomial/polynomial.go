// Package polynomial implements an immutable single-variable polynomial with
// float64 coefficients.
//
// Coefficients are always given and stored in descending degree order: the
// first element is the coefficient of the highest power. For example
// []float64{1, 2, 3} represents x^2 + 2x + 3.
//
// Two coefficients are considered equal when they differ by less than
// Epsilon, and a coefficient is numerically zero when its magnitude is below
// Epsilon. Polynomials are normalized on construction: leading numerically
// zero coefficients are dropped, and the zero polynomial is stored as [0].
//
// The zero value of Polynomial is the zero polynomial.
//
// A *Polynomial is never modified after construction (UnmarshalBinary and
// ReadFrom on a freshly declared value excepted), so it can be shared between
// goroutines without synchronization.
package polynomial

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance under which two coefficients are considered equal.
// The literal is 10e-10, that is 1e-9.
const Epsilon = 10e-10

var (
	// ErrInvalidArgument is returned for absent or empty inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange is returned by Coeff for an index outside the stored coefficients.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Polynomial is an immutable polynomial with float64 coefficients.
type Polynomial struct {
	// coeffs[0] is the leading coefficient and coeffs[len(coeffs)-1] the constant term.
	coeffs []float64
	str    string
}

// NewPolynomial creates a new polynomial from coeffs, given in descending degree order.
// The slice is copied. It returns an error wrapping ErrInvalidArgument if coeffs is
// nil or empty.
func NewPolynomial(coeffs []float64) (*Polynomial, error) {

	if coeffs == nil {
		return nil, fmt.Errorf("cannot NewPolynomial: coeffs is nil: %w", ErrInvalidArgument)
	}

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot NewPolynomial: coeffs must have at least one element: %w", ErrInvalidArgument)
	}

	return newPolynomial(normalize(coeffs)), nil
}

// newPolynomial takes ownership of a normalized coefficient slice.
func newPolynomial(coeffs []float64) (p *Polynomial) {
	p = &Polynomial{coeffs: coeffs}
	p.str = p.format()
	return
}

// normalize returns a copy of coeffs without its leading numerically zero
// coefficients, or [0] if all of them are.
func normalize(coeffs []float64) []float64 {
	for i, c := range coeffs {
		if !isZero(c) {
			normalized := make([]float64, len(coeffs)-i)
			copy(normalized, coeffs[i:])
			return normalized
		}
	}
	return []float64{0}
}

// zero backs the zero value of Polynomial and is never written to.
var zero = []float64{0}

// values returns the stored coefficients, or [0] for the zero value.
func (p *Polynomial) values() []float64 {
	if len(p.coeffs) == 0 {
		return zero
	}
	return p.coeffs
}

func isZero(a float64) bool {
	return math.Abs(a) < Epsilon
}

func equalCoeff(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Degree returns the degree of the polynomial, which is 0 for constants
// including the zero polynomial.
func (p *Polynomial) Degree() int {
	return len(p.values()) - 1
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	coeffs := p.values()
	return len(coeffs) == 1 && coeffs[0] == 0
}

// Coeff returns the i-th stored coefficient, counting from the leading one:
// Coeff(0) is the leading coefficient and Coeff(p.Degree()) the constant term.
func (p *Polynomial) Coeff(i int) (float64, error) {
	coeffs := p.values()
	if i < 0 || i >= len(coeffs) {
		return 0, fmt.Errorf("cannot Coeff: index %d not in [0, %d]: %w", i, len(coeffs)-1, ErrIndexOutOfRange)
	}
	return coeffs[i], nil
}

// CoefficientOfDegree returns the coefficient of x^d, which is 0 for any d
// outside [0, p.Degree()].
func (p *Polynomial) CoefficientOfDegree(d int) float64 {
	if d < 0 || d > p.Degree() {
		return 0
	}
	return p.values()[p.Degree()-d]
}

// Coeffs returns a copy of the coefficients in descending degree order.
func (p *Polynomial) Coeffs() []float64 {
	return append([]float64(nil), p.values()...)
}

// Clone returns a new polynomial equal to p.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{coeffs: p.Coeffs(), str: p.String()}
}

// Evaluate returns p(x), computed with Horner's method.
func (p *Polynomial) Evaluate(x float64) (y float64) {
	coeffs := p.values()
	y = coeffs[0]
	for _, c := range coeffs[1:] {
		y = y*x + c
	}
	return
}

// String returns the algebraic form of p, e.g. "x^2 - 2.5x + 3".
func (p *Polynomial) String() string {
	if p == nil {
		return "<nil>"
	}
	if p.str == "" {
		return p.format()
	}
	return p.str
}
