package polynomial

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/numkit/numkit/utils/buffer"
)

// readChunk bounds the number of coefficients allocated ahead of the bytes
// actually read, so that a forged length prefix cannot exhaust memory.
const readChunk = 1 << 10

// BinarySize returns the serialized size of the object in bytes.
func (p *Polynomial) BinarySize() int {
	return 8 + len(p.values())<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w:
// the number of coefficients followed by their IEEE-754 bit patterns,
// little-endian, leading coefficient first.
//
// Unless w implements the buffer.Writer interface (see numkit/utils/buffer),
// it will be wrapped into a bufio.Writer.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	if p == nil {
		return 0, fmt.Errorf("cannot WriteTo: polynomial is nil: %w", ErrInvalidArgument)
	}

	switch w := w.(type) {
	case buffer.Writer:

		coeffs := p.values()

		var inc int64
		if inc, err = buffer.WriteInt(w, len(coeffs)); err != nil {
			return inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded coefficients are normalized
// like in NewPolynomial.
//
// ReadFrom overwrites the receiver and must only be called on a
// polynomial that is not shared yet, typically a new(Polynomial).
//
// Unless r implements the buffer.Reader interface (see numkit/utils/buffer),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int
		if inc, err = buffer.ReadInt(r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}

		n += inc

		if size == 0 {
			return n, fmt.Errorf("cannot ReadFrom: encoded polynomial has no coefficients: %w", ErrInvalidArgument)
		}

		coeffs := make([]float64, 0, min(size, readChunk))

		for len(coeffs) < size {

			m := min(size-len(coeffs), readChunk)
			coeffs = append(coeffs, make([]float64, m)...)

			if inc, err = buffer.ReadFloat64Slice(r, coeffs[len(coeffs)-m:]); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
			}

			n += inc
		}

		*p = *newPolynomial(normalize(coeffs))

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	if p == nil {
		return nil, fmt.Errorf("cannot MarshalBinary: polynomial is nil: %w", ErrInvalidArgument)
	}
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
// The length prefix must match the size of data exactly.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {

	if len(data) < 8 {
		return fmt.Errorf("cannot UnmarshalBinary: %d bytes is shorter than the length prefix: %w", len(data), ErrInvalidArgument)
	}

	if size := binary.LittleEndian.Uint64(data); (len(data)-8)%8 != 0 || uint64((len(data)-8)>>3) != size {
		return fmt.Errorf("cannot UnmarshalBinary: length prefix %d does not match %d bytes of coefficients: %w", size, len(data)-8, ErrInvalidArgument)
	}

	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
