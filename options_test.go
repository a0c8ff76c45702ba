package mandel

import "testing"

func TestOptions(t *testing.T) {
	vp := Viewport{RealMin: -1, RealMax: 1, ImagMin: -1, ImagMax: 1}
	r := NewRenderer(WithWorkers(3), WithViewport(vp))
	defer r.Close()

	if r.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", r.Workers())
	}
	if r.Viewport() != vp {
		t.Errorf("Viewport() = %+v, want %+v", r.Viewport(), vp)
	}

	// A square viewport yields square grids.
	g, err := r.Compute(4, 5)
	if err != nil {
		t.Fatal(err)
	}
	if g.Cols() != 4 {
		t.Errorf("Cols() = %d, want 4 for a square viewport", g.Cols())
	}
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.maxPixels != 0 {
		t.Errorf("maxPixels = %d, want 0 (no cap)", o.maxPixels)
	}
	if o.viewport != DefaultViewport() {
		t.Errorf("viewport = %+v, want DefaultViewport()", o.viewport)
	}
	if o.workers != 0 || o.chunk != 0 || o.logger != nil {
		t.Errorf("unexpected non-zero defaults: %+v", o)
	}
}

func TestWithMaxPixelsZeroDisablesCap(t *testing.T) {
	r := NewRenderer(WithMaxPixels(0), WithWorkers(1))
	defer r.Close()

	if _, err := r.Compute(4, 1); err != nil {
		t.Errorf("Compute() with no pixel cap error = %v", err)
	}
}
