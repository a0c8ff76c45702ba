package mandel

import (
	"fmt"
	"math"
)

// Viewport is the rectangle of the complex plane that is sampled.
type Viewport struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64
}

// DefaultViewport returns [-2, 1] × [-1, 1], the whole set with a 3:2 aspect.
func DefaultViewport() Viewport {
	return Viewport{RealMin: -2, RealMax: 1, ImagMin: -1, ImagMax: 1}
}

// Validate reports ErrInvalidViewport unless both spans are positive and finite.
func (v Viewport) Validate() error {
	w, h := v.RealMax-v.RealMin, v.ImagMax-v.ImagMin
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return fmt.Errorf("%w: real [%g, %g], imag [%g, %g]", ErrInvalidViewport,
			v.RealMin, v.RealMax, v.ImagMin, v.ImagMax)
	}
	return nil
}

// Aspect returns the real span divided by the imaginary span.
func (v Viewport) Aspect() float64 {
	return (v.RealMax - v.RealMin) / (v.ImagMax - v.ImagMin)
}

// Columns returns the column count that keeps pixels square for the given
// number of rows: round(rows × Aspect()). For DefaultViewport this is
// round(1.5 × rows).
func (v Viewport) Columns(rows int) int {
	return int(math.Round(float64(rows) * v.Aspect()))
}

// Sampler maps pixel coordinates (row i, column j) to points of a viewport.
// Column 0 maps to RealMin and column cols-1 to RealMax; row 0 maps to
// ImagMin and row rows-1 to ImagMax.
type Sampler struct {
	rows, cols int

	// re = re0 + dx·j, im = im0 + dy·i
	re0, dx float64
	im0, dy float64
}

// NewSampler returns the sampler for a rows×cols grid over v.
// Grids with fewer than two rows or columns are rejected with
// ErrInvalidDimension; they would need a division by zero.
func NewSampler(v Viewport, rows, cols int) (Sampler, error) {
	if err := v.Validate(); err != nil {
		return Sampler{}, err
	}
	if rows < 2 || cols < 2 {
		return Sampler{}, fmt.Errorf("%w: got %d rows, %d columns", ErrInvalidDimension, rows, cols)
	}

	return Sampler{
		rows: rows,
		cols: cols,
		re0:  v.RealMin,
		dx:   (v.RealMax - v.RealMin) / float64(cols-1),
		im0:  v.ImagMin,
		dy:   (v.ImagMax - v.ImagMin) / float64(rows-1),
	}, nil
}

// Rows returns the number of grid rows.
func (s Sampler) Rows() int { return s.rows }

// Cols returns the number of grid columns.
func (s Sampler) Cols() int { return s.cols }

// At returns the point for row i, column j in single precision.
func (s Sampler) At(i, j int) complex64 {
	re := s.re0 + s.dx*float64(j)
	im := s.im0 + s.dy*float64(i)
	return complex(float32(re), float32(im))
}
