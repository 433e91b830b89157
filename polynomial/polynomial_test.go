package polynomial

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func testString(opname string, coeffs ...[]float64) string {
	return fmt.Sprintf("%s/%v", opname, coeffs)
}

func mustNew(t *testing.T, coeffs ...float64) *Polynomial {
	t.Helper()
	p, err := NewPolynomial(coeffs)
	require.NoError(t, err)
	return p
}

// approxCoeffs compares coefficient slices within Epsilon.
var approxCoeffs = cmpopts.EquateApprox(0, Epsilon)

func TestNewPolynomial(t *testing.T) {

	t.Run("Nil", func(t *testing.T) {
		_, err := NewPolynomial(nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewPolynomial([]float64{})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	for _, tc := range []struct {
		in     []float64
		coeffs []float64
		degree int
	}{
		{[]float64{1, 2, 3}, []float64{1, 2, 3}, 2},
		{[]float64{0, 0, 1, 2, 3}, []float64{1, 2, 3}, 2},
		{[]float64{1e-10, -5e-10, 4, 0}, []float64{4, 0}, 1},
		{[]float64{0, 0, 0}, []float64{0}, 0},
		{[]float64{-1e-12}, []float64{0}, 0},
		{[]float64{5}, []float64{5}, 0},
		{[]float64{1, 0, 0}, []float64{1, 0, 0}, 2},
	} {
		t.Run(testString("Normalize", tc.in), func(t *testing.T) {
			p, err := NewPolynomial(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.degree, p.Degree())
			require.Equal(t, tc.coeffs, p.Coeffs())
		})
	}

	t.Run("CopiesInput", func(t *testing.T) {
		in := []float64{1, 2, 3}
		p := mustNew(t, in...)
		in[0] = 42
		require.Equal(t, []float64{1, 2, 3}, p.Coeffs())
	})

	t.Run("CopiesOutput", func(t *testing.T) {
		p := mustNew(t, 1, 2, 3)
		out := p.Coeffs()
		out[0] = 42
		require.Equal(t, []float64{1, 2, 3}, p.Coeffs())
	})

	t.Run("Zero", func(t *testing.T) {
		require.True(t, mustNew(t, 0, 0, 0).IsZero())
		require.False(t, mustNew(t, 0, 1).IsZero())
		require.Equal(t, "0", mustNew(t, 0, 0, 0).String())
	})
}

func TestZeroValue(t *testing.T) {

	var p Polynomial
	zero := mustNew(t, 0)

	require.Equal(t, 0, p.Degree())
	require.True(t, p.IsZero())
	require.Equal(t, "0", p.String())
	require.Equal(t, 0.0, p.Evaluate(3))
	require.Equal(t, []float64{0}, p.Coeffs())
	require.Equal(t, 0.0, p.CoefficientOfDegree(0))
	require.True(t, Equal(&p, zero))
	require.Equal(t, zero.Hash(), p.Hash())
	require.Equal(t, "0", p.Clone().String())

	c, err := p.Coeff(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, c)

	sum, err := Add(&p, Coefficients{1, 2})
	require.NoError(t, err)
	require.Equal(t, "x + 2", sum.String())

	neg, err := p.Neg()
	require.NoError(t, err)
	require.True(t, neg.IsZero())

	data, err := p.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, zero.BinarySize(), len(data))
}

func TestAccessors(t *testing.T) {

	p := mustNew(t, 4, 0, -2, 7)

	t.Run("Coeff", func(t *testing.T) {
		for i, want := range []float64{4, 0, -2, 7} {
			c, err := p.Coeff(i)
			require.NoError(t, err)
			require.Equal(t, want, c)
		}

		for _, i := range []int{-1, 4, 100} {
			_, err := p.Coeff(i)
			require.ErrorIs(t, err, ErrIndexOutOfRange)
		}
	})

	t.Run("CoefficientOfDegree", func(t *testing.T) {
		require.Equal(t, 7.0, p.CoefficientOfDegree(0))
		require.Equal(t, -2.0, p.CoefficientOfDegree(1))
		require.Equal(t, 0.0, p.CoefficientOfDegree(2))
		require.Equal(t, 4.0, p.CoefficientOfDegree(3))
		require.Equal(t, 0.0, p.CoefficientOfDegree(4))
		require.Equal(t, 0.0, p.CoefficientOfDegree(-1))
	})

	t.Run("Evaluate", func(t *testing.T) {
		for _, x := range []float64{-2, -0.5, 0, 1, 3} {
			want := 4*x*x*x - 2*x + 7
			require.InDelta(t, want, p.Evaluate(x), 1e-12)
		}
		require.Equal(t, 5.0, mustNew(t, 5).Evaluate(123))
	})

	t.Run("Clone", func(t *testing.T) {
		q := p.Clone()
		require.NotSame(t, p, q)
		require.True(t, Equal(p, q))
		require.Equal(t, p.String(), q.String())
		require.Equal(t, p.Hash(), q.Hash())
	})
}

func TestEqual(t *testing.T) {

	for _, tc := range []struct {
		l, r  []float64
		equal bool
	}{
		{[]float64{1, 2, 3}, []float64{1, 2, 3}, true},
		{[]float64{0, 1, 2, 3}, []float64{1, 2, 3}, true},
		{[]float64{1, 2}, []float64{1, 2, 3}, false},
		{[]float64{1, 2}, []float64{2, 3}, false},
		{[]float64{1.1999999999, -5.89999999999}, []float64{1.2, -5.9}, true},
		{[]float64{1.19999999999, -5.89999999999}, []float64{1.2, -5.9}, true},
		{[]float64{1.2 + 2e-9, -5.9}, []float64{1.2, -5.9}, false},
	} {
		t.Run(testString("Equal", tc.l, tc.r), func(t *testing.T) {
			lhs := mustNew(t, tc.l...)
			rhs := mustNew(t, tc.r...)
			require.Equal(t, tc.equal, Equal(lhs, rhs))
			require.Equal(t, tc.equal, lhs.Equal(rhs))
			require.Equal(t, tc.equal, rhs.Equal(lhs))
		})
	}

	t.Run("SamePointer", func(t *testing.T) {
		a := mustNew(t, 3)
		b := a
		require.True(t, Equal(a, b))
	})

	t.Run("Nil", func(t *testing.T) {
		a := mustNew(t, 3)
		var b *Polynomial
		require.False(t, Equal(a, b))
		require.False(t, Equal(b, a))
		require.False(t, a.Equal(nil))
		require.True(t, Equal(nil, nil))
	})
}

func TestHash(t *testing.T) {

	a := mustNew(t, 1.1)
	b := mustNew(t, 1.1)
	c := a

	set := map[uint64][]*Polynomial{}
	for _, p := range []*Polynomial{a, b, c} {
		set[p.Hash()] = append(set[p.Hash()], p)
	}

	require.Len(t, set, 1)
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), mustNew(t, 1.2).Hash())
	require.NotEqual(t, mustNew(t, 1, 2).Hash(), mustNew(t, 2, 1).Hash())

	t.Run("SignedZero", func(t *testing.T) {
		p := mustNew(t, 1, 0, 2)
		q, err := Neg(mustNew(t, -1, 0, -2))
		require.NoError(t, err)
		require.True(t, Equal(p, q))
		require.Equal(t, p.Hash(), q.Hash())
	})

	t.Run("Nil", func(t *testing.T) {
		var p *Polynomial
		require.Equal(t, uint64(0), p.Hash())
	})
}

func TestCoeffsCmp(t *testing.T) {
	p := mustNew(t, 1.1999999999, -5.89999999999)
	require.True(t, cmp.Equal([]float64{1.2, -5.9}, p.Coeffs(), approxCoeffs))
}
