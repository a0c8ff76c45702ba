//go:build !unix

package pgm

import "errors"

// WriteFile reports errors.ErrUnsupported: the memory-mapped writer needs a
// unix mmap.
func WriteFile(path string, img Image) error {
	if err := validate(img); err != nil {
		return err
	}
	return &Error{Op: OpMap, Path: path, Err: errors.ErrUnsupported}
}
