package mandel

import (
	"errors"
	"fmt"

	"github.com/gogpu/mandel/internal/pgm"
	"github.com/gogpu/mandel/internal/raster"
)

// Error kinds. Errors returned by a Renderer match one of ErrInvalidInput,
// ErrOutOfMemory, ErrIO or ErrClosed under errors.Is.
var (
	// ErrInvalidInput covers out-of-domain parameters.
	ErrInvalidInput = errors.New("mandel: invalid input")

	// ErrInvalidDimension is returned for grids with fewer than two rows or
	// columns, where the pixel-to-plane mapping would divide by zero.
	ErrInvalidDimension = fmt.Errorf("%w: grid needs at least 2 rows and 2 columns", ErrInvalidInput)

	// ErrInvalidIterations is returned for an iteration budget below 0 or
	// above math.MaxInt32.
	ErrInvalidIterations = fmt.Errorf("%w: iteration budget out of range", ErrInvalidInput)

	// ErrInvalidViewport is returned when a viewport has an empty or NaN span.
	ErrInvalidViewport = fmt.Errorf("%w: empty viewport", ErrInvalidInput)

	// ErrOutOfMemory is returned when the grid or raster cannot be allocated.
	ErrOutOfMemory = raster.ErrOutOfMemory

	// ErrIO marks a failed file operation of the image writer. The concrete
	// error is a *WriteError naming the step and path.
	ErrIO = pgm.ErrIO

	// ErrReleased is returned by (*Raster).Release on a nil or released raster.
	ErrReleased = raster.ErrReleased

	// ErrClosed is returned by a Renderer after Close.
	ErrClosed = errors.New("mandel: renderer is closed")
)

// WriteError describes the failing step of an image write.
type WriteError = pgm.Error

// Write steps reported in WriteError.Op.
const (
	OpOpen        = pgm.OpOpen
	OpWriteHeader = pgm.OpWriteHeader
	OpTruncate    = pgm.OpTruncate
	OpMap         = pgm.OpMap
	OpSync        = pgm.OpSync
	OpUnmap       = pgm.OpUnmap
	OpClose       = pgm.OpClose
)
