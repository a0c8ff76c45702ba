package mandel

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/mandel/internal/parallel"
	"github.com/gogpu/mandel/internal/pgm"
	"github.com/gogpu/mandel/internal/raster"
)

// Raster is an 8-bit grayscale image, one byte per pixel in row-major order.
type Raster = raster.Raster

// Renderer runs the escape-time pipeline on a pool of workers:
// Compute fills a Grid, Shade turns it into a Raster, Render does both and
// writes the result as a binary PGM file.
//
// A Renderer may be used from several goroutines at once. Close releases its
// workers.
type Renderer struct {
	opts options
	pool *parallel.Pool
}

// Result describes a written image.
type Result struct {
	Path   string
	Width  int
	Height int
	Bytes  int // header and pixels
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		opts: o,
		pool: parallel.NewPool(o.workers),
	}
}

// Close stops the worker pool. Later calls fail with ErrClosed.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Workers returns the number of worker goroutines.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Viewport returns the sampled region.
func (r *Renderer) Viewport() Viewport {
	return r.opts.viewport
}

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// Compute samples rows×Columns(rows) points of the viewport and stores the
// escape count of each under budget maxIter. It returns once every cell has
// been written.
func (r *Renderer) Compute(rows, maxIter int) (*Grid, error) {
	if maxIter < 0 || maxIter > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, maxIter)
	}
	vp := r.opts.viewport
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	cols := vp.Columns(rows)
	s, err := NewSampler(vp, rows, cols)
	if err != nil {
		return nil, err
	}

	g, err := newGrid(rows, cols, r.opts.maxPixels)
	if err != nil {
		return nil, fmt.Errorf("mandel: allocate grid: %w", err)
	}

	start := time.Now()
	err = r.pool.For(g.Len(), r.opts.chunk, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			g.counts[k] = int32(Escape(s.At(k/cols, k%cols), maxIter)) //nolint:gosec // maxIter <= MaxInt32
		}
	})
	if err != nil {
		return nil, r.poolErr(err)
	}

	r.logger().Debug("escape grid computed",
		"rows", rows, "cols", cols, "max_iter", maxIter,
		"workers", r.pool.Workers(), "elapsed", time.Since(start))
	return g, nil
}

// Shade maps every count of g to a gray level with Intensity and returns the
// resulting Cols()×Rows() raster. The caller owns the raster.
func (r *Renderer) Shade(g *Grid, maxIter int) (*Raster, error) {
	if maxIter < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIterations, maxIter)
	}
	if g == nil || g.rows < 2 || g.cols < 2 {
		return nil, ErrInvalidDimension
	}

	img, err := raster.New(g.cols, g.rows, r.opts.maxPixels)
	if err != nil {
		return nil, fmt.Errorf("mandel: allocate raster: %w", err)
	}

	start := time.Now()
	pix := img.Pix()
	err = r.pool.For(len(pix), r.opts.chunk, func(lo, hi int) {
		for k := lo; k < hi; k++ {
			pix[k] = Intensity(int(g.counts[k]), maxIter)
		}
	})
	if err != nil {
		_ = img.Release()
		return nil, r.poolErr(err)
	}

	r.logger().Debug("raster shaded",
		"width", img.Width(), "height", img.Height(), "elapsed", time.Since(start))
	return img, nil
}

// Render computes, shades and writes a rows-high image to path as binary PGM.
// Any failure aborts the render; a partially written file may remain.
func (r *Renderer) Render(path string, maxIter, rows int) (Result, error) {
	g, err := r.Compute(rows, maxIter)
	if err != nil {
		return Result{}, err
	}
	img, err := r.Shade(g, maxIter)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := img.Release(); err != nil {
			r.logger().Warn("release raster", "err", err)
		}
	}()

	start := time.Now()
	if err := pgm.WriteFile(path, img); err != nil {
		return Result{}, fmt.Errorf("mandel: write image: %w", err)
	}

	res := Result{
		Path:   path,
		Width:  img.Width(),
		Height: img.Height(),
		Bytes:  pgm.Size(img.Width(), img.Height()),
	}
	r.logger().Debug("image written", "path", path, "bytes", res.Bytes, "elapsed", time.Since(start))
	r.logger().Info("render finished", "path", path, "width", res.Width, "height", res.Height)
	return res, nil
}

func (r *Renderer) poolErr(err error) error {
	if errors.Is(err, parallel.ErrClosed) {
		return ErrClosed
	}
	return err
}

// Render writes a rows-high image with iteration budget maxIter to path using
// a renderer that lives for this call only.
func Render(path string, maxIter, rows int, opts ...Option) (Result, error) {
	r := NewRenderer(opts...)
	defer r.Close()
	return r.Render(path, maxIter, rows)
}

// Header returns the exact PGM header written for a width×height image.
func Header(width, height int) string {
	return pgm.Header(width, height)
}
