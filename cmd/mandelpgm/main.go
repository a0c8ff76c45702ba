// Command mandelpgm renders the Mandelbrot set to a binary PGM file.
//
// Usage:
//
//	mandelpgm [-workers N] [-max-pixels N] [-v] <file> <max-iterations> <rows>
//
// The image is rows pixels high and round(1.5 × rows) pixels wide. A ".pgm"
// suffix is appended to file when missing. -max-pixels refuses larger images
// before allocating; the default of 0 leaves the size limited only by memory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandel"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errUsage = errors.New("expected <file> <max-iterations> <rows>")

type config struct {
	path    string
	maxIter int
	rows    int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mandelpgm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	workers := fs.Int("workers", 0, "number of render workers (0 = GOMAXPROCS)")
	maxPixels := fs.Int("max-pixels", 0, "refuse images with more pixels than this (0 = no cap)")
	verbose := fs.Bool("v", false, "log pipeline stages to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: mandelpgm [-workers N] [-max-pixels N] [-v] <file> <max-iterations> <rows>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := parseArgs(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "mandelpgm: %s: %v\n", stage(err), err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return exitUsage
		}
		return exitFail
	}

	opts := []mandel.Option{
		mandel.WithWorkers(*workers),
		mandel.WithMaxPixels(*maxPixels),
	}
	if *verbose {
		opts = append(opts, mandel.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}

	res, err := mandel.Render(cfg.path, cfg.maxIter, cfg.rows, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "mandelpgm: %s: %v\n", stage(err), err)
		return exitFail
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "wrote %s: %d×%d pixels, %d bytes\n", res.Path, res.Width, res.Height, res.Bytes)
	return exitOK
}

// parseArgs validates the positional arguments.
func parseArgs(args []string) (config, error) {
	if len(args) != 3 {
		return config{}, fmt.Errorf("%w, got %d arguments", errUsage, len(args))
	}
	if args[0] == "" {
		return config{}, fmt.Errorf("%w: empty file name", mandel.ErrInvalidInput)
	}

	maxIter, err := strconv.Atoi(args[1])
	if err != nil {
		return config{}, fmt.Errorf("%w: max-iterations %q is not an integer", mandel.ErrInvalidInput, args[1])
	}
	if maxIter < 0 {
		return config{}, fmt.Errorf("%w: max-iterations must be >= 0, got %d", mandel.ErrInvalidInput, maxIter)
	}

	rows, err := strconv.Atoi(args[2])
	if err != nil {
		return config{}, fmt.Errorf("%w: rows %q is not an integer", mandel.ErrInvalidInput, args[2])
	}
	if rows < 0 {
		return config{}, fmt.Errorf("%w: rows must be >= 0, got %d", mandel.ErrInvalidInput, rows)
	}

	return config{path: pgmName(args[0]), maxIter: maxIter, rows: rows}, nil
}

// pgmName appends ".pgm" unless name already ends with it.
func pgmName(name string) string {
	if strings.HasSuffix(name, ".pgm") {
		return name
	}
	return name + ".pgm"
}

// stage names the pipeline stage an error came from.
func stage(err error) string {
	var werr *mandel.WriteError
	switch {
	case errors.Is(err, errUsage), errors.Is(err, mandel.ErrInvalidInput):
		return "argument validation"
	case errors.Is(err, mandel.ErrOutOfMemory):
		return "allocation"
	case errors.As(err, &werr):
		return "write (" + werr.Op + ")"
	default:
		return "render"
	}
}
