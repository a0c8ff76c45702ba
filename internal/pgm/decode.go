package pgm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/mandel/internal/raster"
)

// ErrFormat is returned by Decode for input that is not a P5 file with a
// maximum value of 255.
var ErrFormat = errors.New("pgm: invalid format")

// DefaultDecodePixels is the pixel cap Decode applies when none is given.
const DefaultDecodePixels = 1 << 28

// Decode reads a P5 image. Header comments ("#" to end of line) are skipped.
// Headers claiming more than maxPixels pixels fail with raster.ErrOutOfMemory
// before the pixel buffer is allocated; maxPixels of 0 or less means
// DefaultDecodePixels.
func Decode(r io.Reader, maxPixels int) (*raster.Raster, error) {
	if maxPixels <= 0 {
		maxPixels = DefaultDecodePixels
	}
	br := bufio.NewReader(r)

	magic, err := token(br)
	if err != nil {
		return nil, err
	}
	if magic != "P5" {
		return nil, fmt.Errorf("%w: magic %q", ErrFormat, magic)
	}

	var dims [3]int
	for i := range dims {
		tok, err := token(br)
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: header field %q", ErrFormat, tok)
		}
		dims[i] = n
	}
	if dims[2] != MaxValue {
		return nil, fmt.Errorf("%w: max value %d", ErrFormat, dims[2])
	}

	img, err := raster.New(dims[0], dims[1], maxPixels)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(br, img.Pix()); err != nil {
		return nil, fmt.Errorf("%w: pixel data: %v", ErrFormat, err)
	}
	return img, nil
}

// token returns the next whitespace-delimited header field and consumes the
// single whitespace byte that ends it.
func token(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: truncated header", ErrFormat)
		}
		switch {
		case c == '#' && len(buf) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: truncated header", ErrFormat)
			}
		case isSpace(c):
			if len(buf) > 0 {
				return string(buf), nil
			}
		default:
			buf = append(buf, c)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
