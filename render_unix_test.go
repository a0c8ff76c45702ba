//go:build unix

package mandel

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestRenderScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.pgm")

	res, err := Render(path, 10, 4, WithWorkers(2))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if res.Path != path || res.Width != 6 || res.Height != 4 {
		t.Errorf("Result = %+v, want 6x4 at %s", res, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	header := "P5\n6 4\n255\n"
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Fatalf("file starts with %q, want %q", data[:min(len(data), len(header))], header)
	}
	if got := len(data) - len(header); got != 24 {
		t.Errorf("pixel bytes = %d, want 24", got)
	}
	if res.Bytes != len(data) {
		t.Errorf("Result.Bytes = %d, file has %d", res.Bytes, len(data))
	}
}

func TestRenderMinimumRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.pgm")
	if _, err := Render(path, 50, 2); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := Header(3, 2); !bytes.HasPrefix(data, []byte(want)) || len(data) != len(want)+6 {
		t.Errorf("file = %q, want header %q and 6 pixels", data, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	dir := t.TempDir()
	a, b := filepath.Join(dir, "a.pgm"), filepath.Join(dir, "b.pgm")

	if _, err := Render(a, 200, 40, WithWorkers(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := Render(b, 200, 40, WithWorkers(6)); err != nil {
		t.Fatal(err)
	}

	da, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := os.ReadFile(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(da, db) {
		t.Error("two renders with identical parameters produced different files")
	}

	// Rendering over an existing file gives the same bytes again.
	if _, err := Render(a, 200, 40); err != nil {
		t.Fatal(err)
	}
	again, err := os.ReadFile(a)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, da) {
		t.Error("re-render over an existing file changed its content")
	}
}

func TestRenderZeroBudgetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.pgm")
	if _, err := Render(path, 0, 4); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	pix := data[len(Header(6, 4)):]
	if !bytes.Equal(pix, make([]byte, 24)) {
		t.Errorf("pixels = %v, want all zero", pix)
	}
}

func TestRenderWriteErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir.pgm")

	_, err := Render(path, 10, 4)
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Render() error = %v, want ErrIO", err)
	}
	var werr *WriteError
	if !errors.As(err, &werr) {
		t.Fatalf("Render() error = %v, want *WriteError", err)
	}
	if werr.Op != OpOpen || werr.Path != path {
		t.Errorf("WriteError = {Op: %q, Path: %q}, want {Op: %q, Path: %q}", werr.Op, werr.Path, OpOpen, path)
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) || errno != syscall.ENOENT {
		t.Errorf("errno = %v, want ENOENT", errno)
	}
}

func TestRenderInvalidInputCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.pgm")
	if _, err := Render(path, 10, 1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Render(rows=1) error = %v, want ErrInvalidInput", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Render() created a file for invalid input")
	}
}
