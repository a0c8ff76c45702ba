// Package mandel renders the Mandelbrot set as an 8-bit grayscale image and
// stores it as a binary PGM file.
//
// # Overview
//
// A render runs in three phases separated by full barriers:
//
//  1. Compute samples a rows×cols grid of the viewport and records the
//     escape count of every point (see Escape).
//  2. Shade maps every count to a gray level on a logarithmic scale
//     (see Intensity).
//  3. Render writes "P5\n<cols> <rows>\n255\n" followed by the pixels,
//     copying them into the file through a shared memory mapping.
//
// Phases 1 and 2 split the flat pixel index space across a worker pool; each
// pixel is written by exactly one worker, so no locking is involved.
//
// # Quick Start
//
//	res, err := mandel.Render("set.pgm", 256, 1080)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", res.Path)
//
// # Geometry
//
// The default viewport is [-2, 1] × [-1, 1]. The column count is derived
// from the row count so that pixels stay square: round(1.5 × rows) for the
// default viewport. Row 0, the top row of the image, samples imaginary part
// -1; the set is symmetric about the real axis, so the picture is the same
// either way up.
//
// # Errors
//
// Failures are returned, never fatal. Match them with errors.Is against
// ErrInvalidInput, ErrOutOfMemory, ErrIO and ErrClosed; write failures
// carry a *WriteError naming the failing step and path.
package mandel
