package polynomial

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/blake3"
)

// Equal returns true if lhs and rhs are the same pointer (both nil included),
// or if both are non-nil, have the same degree and all their coefficients
// differ by less than Epsilon.
func Equal(lhs, rhs *Polynomial) bool {

	if lhs == rhs {
		return true
	}

	if lhs == nil || rhs == nil {
		return false
	}

	l, r := lhs.values(), rhs.values()

	if len(l) != len(r) {
		return false
	}

	for i := range l {
		if !equalCoeff(l[i], r[i]) {
			return false
		}
	}

	return true
}

// Equal returns Equal(p, other).
func (p *Polynomial) Equal(other *Polynomial) bool {
	return Equal(p, other)
}

// Hash returns a 64-bit digest of the coefficients of p, computed with BLAKE3
// over their IEEE-754 bit patterns.
//
// Polynomials with bit-identical coefficients have the same hash. Polynomials
// that are Equal only within Epsilon may hash differently: use Hash to bucket
// values and Equal to compare them. The hash of a nil polynomial is 0.
func (p *Polynomial) Hash() uint64 {

	if p == nil {
		return 0
	}

	hasher := blake3.New()

	var buf [8]byte
	for _, c := range p.values() {
		if c == 0 {
			c = 0 // -0 and +0 are equal
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(c))
		hasher.Write(buf[:])
	}

	digest := hasher.Sum(nil)

	return binary.LittleEndian.Uint64(digest[:8])
}
