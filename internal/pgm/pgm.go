// Package pgm writes and reads binary PGM ("P5") grayscale rasters.
//
// A file is the ASCII header "P5\n<width> <height>\n255\n" followed by
// width*height bytes in row-major order. WriteFile sizes the file up front
// and copies the pixel payload through a shared memory mapping.
package pgm

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// MaxValue is the only maximum gray value this package writes or accepts.
const MaxValue = 255

// Image is the pixel source consumed by WriteFile.
type Image interface {
	Width() int
	Height() int
	Pix() []byte
}

// ErrIO marks every failure of a file operation performed by WriteFile.
var ErrIO = errors.New("pgm: I/O failure")

// ErrInvalidImage is returned when an image has no pixels or its buffer
// length does not match its dimensions.
var ErrInvalidImage = errors.New("pgm: invalid image")

// Operations reported in Error.Op.
const (
	OpOpen        = "open"
	OpWriteHeader = "write header"
	OpTruncate    = "truncate"
	OpMap         = "mmap"
	OpSync        = "msync"
	OpUnmap       = "munmap"
	OpClose       = "close"
)

// Error records which step of WriteFile failed, on which path, and why.
// It matches ErrIO and the underlying cause (for example a syscall.Errno)
// with errors.Is and errors.As.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("pgm: %s %s: %v", e.Op, e.Path, e.Err)
}

// newError records a failed step. An *os.PathError cause is unwrapped to its
// errno so the step and path are not repeated in the message.
func newError(op, path string, err error) *Error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &Error{Op: op, Path: path, Err: err}
}

// Unwrap returns ErrIO and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{ErrIO, e.Err}
}

// Header returns the exact P5 header for a width×height image.
func Header(width, height int) string {
	return "P5\n" + strconv.Itoa(width) + " " + strconv.Itoa(height) + "\n" + strconv.Itoa(MaxValue) + "\n"
}

// Size returns the total file size for a width×height image.
func Size(width, height int) int {
	return len(Header(width, height)) + width*height
}

func validate(img Image) error {
	w, h := img.Width(), img.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidImage, w, h)
	}
	if len(img.Pix()) != w*h {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidImage, len(img.Pix()), w, h)
	}
	return nil
}
