//go:build unix

package pgm

import (
	"os"

	"golang.org/x/sys/unix"
)

// WriteFile creates or truncates path and stores img in it.
//
// The header is written with a plain write, the file is then extended to its
// final size and mapped shared and writable; the pixels are copied into the
// mapping at the header offset and flushed with msync(MS_SYNC). The mapping is
// always released before the file is closed. The first failing step is
// returned as *Error; nothing is retried.
func WriteFile(path string, img Image) (err error) {
	if err := validate(img); err != nil {
		return err
	}

	header := Header(img.Width(), img.Height())
	pix := img.Pix()
	size := len(header) + len(pix)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // path is caller-provided
	if err != nil {
		return newError(OpOpen, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = newError(OpClose, path, cerr)
		}
	}()

	if _, err := f.WriteString(header); err != nil {
		return newError(OpWriteHeader, path, err)
	}
	if err := f.Truncate(int64(size)); err != nil {
		return newError(OpTruncate, path, err)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return newError(OpMap, path, err)
	}
	defer func() {
		if uerr := unix.Munmap(data); uerr != nil && err == nil {
			err = newError(OpUnmap, path, uerr)
		}
	}()

	copy(data[len(header):], pix)

	if err := unix.Msync(data, unix.MS_SYNC); err != nil {
		return newError(OpSync, path, err)
	}
	return nil
}
