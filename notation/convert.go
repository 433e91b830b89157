package notation

import (
	"fmt"
	"math"
)

// ToDecimal returns the value of source written in the given notation.
//
// Digits are matched case-insensitively and leading zeros are ignored.
// It returns an error wrapping:
//   - ErrInvalidArgument if source is empty or notation is nil;
//   - ErrFormat if source contains a symbol that is not a digit of notation;
//   - ErrOverflow if the value is larger than math.MaxInt32.
func ToDecimal(source string, notation *Notation) (int32, error) {

	if source == "" {
		return 0, fmt.Errorf("cannot ToDecimal: source is empty: %w", ErrInvalidArgument)
	}

	if notation == nil {
		return 0, fmt.Errorf("cannot ToDecimal: notation is nil: %w", ErrInvalidArgument)
	}

	digits := make([]int64, 0, len(source))

	for i, r := range source {
		v, ok := notation.Value(r)
		if !ok {
			return 0, fmt.Errorf("cannot ToDecimal: %q at position %d is not a base %d digit: %w", r, i, notation.base, ErrFormat)
		}
		digits = append(digits, int64(v))
	}

	base := int64(notation.base)

	var value int64
	for _, d := range digits {
		// value <= MaxInt32 so value*base+d cannot overflow an int64;
		// leading zeros keep value at 0.
		if value = value*base + d; value > math.MaxInt32 {
			return 0, fmt.Errorf("cannot ToDecimal: %q exceeds %d: %w", source, int32(math.MaxInt32), ErrOverflow)
		}
	}

	return int32(value), nil
}
