/*
Package numkit is a small collection of numeric value types.
It provides an immutable floating-point polynomial type with arithmetic, tolerance-based
equality, hashing and algebraic rendering, and a positional numeral converter for bases
2 to 16 that parses digit strings into 32-bit integers.
*/
package numkit
