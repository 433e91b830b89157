// Package notation converts digit strings written in a positional numeral
// system of base 2 to 16 into 32-bit integers.
package notation

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest supported base.
	MaxBase = 16
)

const allDigits = "0123456789ABCDEF"

var (
	// ErrInvalidArgument is returned for an empty source or a nil Notation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned for a base outside [MinBase, MaxBase].
	ErrOutOfRange = errors.New("out of range")
	// ErrFormat is returned when a source contains a symbol that is not a digit of the notation.
	ErrFormat = errors.New("invalid format")
	// ErrOverflow is returned when a converted value does not fit in an int32.
	ErrOverflow = errors.New("overflow")
)

// Notation is the digit alphabet of a positional numeral system.
// The digit at index i has value i.
type Notation struct {
	base   int
	digits string
}

// NewNotation returns the notation of the given base, whose digits are the
// first base symbols of "0123456789ABCDEF".
func NewNotation(base int) (*Notation, error) {
	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("cannot NewNotation: base %d not in [%d, %d]: %w", base, MinBase, MaxBase, ErrOutOfRange)
	}
	return &Notation{base: base, digits: allDigits[:base]}, nil
}

// Base returns the base of the notation.
func (n *Notation) Base() int {
	return n.base
}

// Digits returns the digit alphabet, upper case, lowest value first.
func (n *Notation) Digits() string {
	return n.digits
}

// Value returns the value of the digit r, matched case-insensitively.
func (n *Notation) Value(r rune) (v int, ok bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if v = strings.IndexRune(n.digits, r); v < 0 {
		return 0, false
	}
	return v, true
}
