// Package utils contains generic helpers shared by the numkit packages.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of element types the slice helpers operate on.
type Number interface {
	constraints.Float | constraints.Signed
}

// NegateSlice returns a new slice with every element of s negated.
func NegateSlice[T Number](s []T) (r []T) {
	r = make([]T, len(s))
	for i := range s {
		r[i] = -s[i]
	}
	return
}

// ScaleSlice returns a new slice with every element of s multiplied by scalar.
func ScaleSlice[T Number](s []T, scalar T) (r []T) {
	r = make([]T, len(s))
	for i := range s {
		r[i] = s[i] * scalar
	}
	return
}

// AlignTail returns a new slice of length n holding s in its last len(s)
// positions and zeros before. It panics if n < len(s).
func AlignTail[T Number](s []T, n int) (r []T) {
	if n < len(s) {
		panic("cannot AlignTail: n < len(s)")
	}
	r = make([]T, n)
	copy(r[n-len(s):], s)
	return
}

// AddTail adds s to the last len(s) elements of acc, in place.
// It panics if len(s) > len(acc).
func AddTail[T Number](acc, s []T) {
	if len(s) > len(acc) {
		panic("cannot AddTail: len(s) > len(acc)")
	}
	acc = acc[len(acc)-len(s):]
	for i := range s {
		acc[i] += s[i]
	}
}

// SubTail subtracts s from the last len(s) elements of acc, in place.
// It panics if len(s) > len(acc).
func SubTail[T Number](acc, s []T) {
	if len(s) > len(acc) {
		panic("cannot SubTail: len(s) > len(acc)")
	}
	acc = acc[len(acc)-len(s):]
	for i := range s {
		acc[i] -= s[i]
	}
}
