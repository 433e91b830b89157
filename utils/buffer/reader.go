package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads a little-endian uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadInt reads an uint64 from r and stores it in c.
func ReadInt(r Reader, c *int) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	if u > math.MaxInt32 {
		return n, fmt.Errorf("cannot ReadInt: value %d exceeds %d", u, math.MaxInt32)
	}

	*c = int(u)

	return
}

// ReadFloat64Slice fills c with little-endian IEEE-754 bit patterns read from r.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {

	// c is empty, return
	if len(c) == 0 {
		return
	}

	var slice []byte

	// Avoid EOF
	size := r.Size()
	if len(c)<<3 < size {
		size = len(c) << 3
	}

	if slice, err = r.Peek(size); err != nil {
		return
	}

	buffered := len(slice) >> 3

	if buffered == 0 {
		return 0, fmt.Errorf("cannot ReadFloat64Slice: reader buffer is smaller than 8 bytes")
	}

	if N := len(c); N <= buffered {

		for i, j := 0, 0; i < N; i, j = i+1, j+8 {
			c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
		}

		var inc int
		inc, err = r.Discard(N << 3)
		return int64(inc), err
	}

	for i, j := 0, 0; i < buffered; i, j = i+1, j+8 {
		c[i] = math.Float64frombits(binary.LittleEndian.Uint64(slice[j:]))
	}

	var inc int
	if inc, err = r.Discard(buffered << 3); err != nil {
		return n + int64(inc), err
	}

	n += int64(inc)

	// Recurses on the remaining slice to fill
	var inc64 int64
	inc64, err = ReadFloat64Slice(r, c[buffered:])

	return n + inc64, err
}
