// Package sampling implements reproducible sampling of floating-point values.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// FloatSampler draws float64 values uniformly in [Min, Max) from a PRNG.
type FloatSampler struct {
	prng     PRNG
	Min, Max float64
	buf      [8]byte
}

// NewFloatSampler creates a new FloatSampler reading from prng.
func NewFloatSampler(prng PRNG, min, max float64) (*FloatSampler, error) {
	if prng == nil {
		return nil, fmt.Errorf("cannot NewFloatSampler: prng is nil")
	}
	if !(min < max) {
		return nil, fmt.Errorf("cannot NewFloatSampler: invalid interval [%v, %v)", min, max)
	}
	return &FloatSampler{prng: prng, Min: min, Max: max}, nil
}

// Float64 returns the next sample.
func (s *FloatSampler) Float64() float64 {
	if _, err := s.prng.Read(s.buf[:]); err != nil {
		// Sampling from a healthy XOF cannot fail.
		panic(err)
	}
	// 53 random bits mapped to [0, 1)
	f := float64(binary.LittleEndian.Uint64(s.buf[:])>>11) / (1 << 53)
	return s.Min + f*(s.Max-s.Min)
}

// Read fills v with samples.
func (s *FloatSampler) Read(v []float64) {
	for i := range v {
		v[i] = s.Float64()
	}
}

// ReadNew returns a new slice of n samples.
func (s *FloatSampler) ReadNew(n int) (v []float64) {
	v = make([]float64, n)
	s.Read(v)
	return
}
