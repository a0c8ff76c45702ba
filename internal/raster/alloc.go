package raster

import (
	"fmt"
	"math"
)

// Pixels returns width*height, or ErrOutOfMemory when the product does not
// fit in an int or exceeds limit. A limit of 0 or less means no budget.
func Pixels(width, height, limit int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrInvalidDimensions
	}
	if width > math.MaxInt/height {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrOutOfMemory, width, height)
	}
	n := width * height
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%w: %d pixels exceed budget of %d", ErrOutOfMemory, n, limit)
	}
	return n, nil
}

// Make allocates a zeroed slice of n elements. A request the runtime refuses
// (length out of range for the element size) is reported as ErrOutOfMemory
// instead of panicking.
func Make[T any](n int) (s []T, err error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrOutOfMemory, n)
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]T, n), nil
}
