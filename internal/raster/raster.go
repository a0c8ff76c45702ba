// Package raster owns the 8-bit grayscale pixel buffer of a render.
package raster

import (
	"errors"
	"image"
	"image/color"
)

// Raster errors.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrOutOfMemory is returned when a buffer cannot be allocated.
	ErrOutOfMemory = errors.New("raster: out of memory")

	// ErrReleased is returned by Release on a nil or already released raster.
	ErrReleased = errors.New("raster: already released")
)

// Raster is a width×height buffer of 8-bit intensities in row-major order,
// one byte per pixel with no row padding.
//
// Raster implements image.Image with the color.Gray model.
//
// Thread safety: concurrent writers are safe as long as they touch disjoint
// pixels. Release must not race with any other method.
type Raster struct {
	width  int
	height int
	pix    []byte
}

// New allocates a zeroed raster. limit caps width*height; 0 disables the cap.
func New(width, height, limit int) (*Raster, error) {
	n, err := Pixels(width, height, limit)
	if err != nil {
		return nil, err
	}
	pix, err := Make[byte](n)
	if err != nil {
		return nil, err
	}
	return &Raster{width: width, height: height, pix: pix}, nil
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.height
}

// Pix returns the underlying pixel bytes. The slice is nil after Release.
func (r *Raster) Pix() []byte {
	return r.pix
}

// SetGray stores v at (x, y). Out-of-bounds coordinates are ignored.
func (r *Raster) SetGray(x, y int, v uint8) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height || r.pix == nil {
		return
	}
	r.pix[y*r.width+x] = v
}

// GrayAt returns the intensity at (x, y), or 0 outside the raster.
func (r *Raster) GrayAt(x, y int) uint8 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height || r.pix == nil {
		return 0
	}
	return r.pix[y*r.width+x]
}

// ColorModel implements image.Image.
func (r *Raster) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// At implements image.Image.
func (r *Raster) At(x, y int) color.Color {
	return color.Gray{Y: r.GrayAt(x, y)}
}

// Released reports whether the pixel buffer has been dropped.
func (r *Raster) Released() bool {
	return r == nil || r.pix == nil
}

// Release drops the pixel buffer. Calling Release on a nil raster or a second
// time returns ErrReleased and has no other effect.
func (r *Raster) Release() error {
	if r.Released() {
		return ErrReleased
	}
	r.pix = nil
	return nil
}
