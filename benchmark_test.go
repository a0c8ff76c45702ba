package mandel

import (
	"fmt"
	"testing"
)

func BenchmarkEscape(b *testing.B) {
	points := []complex64{0, complex(-0.75, 0.1), complex(0.3, 0.5), complex(2, 2)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range points {
			_ = Escape(c, 256)
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			r := NewRenderer(WithWorkers(workers))
			defer r.Close()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Compute(200, 256); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkShade(b *testing.B) {
	r := NewRenderer()
	defer r.Close()
	g, err := r.Compute(200, 256)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img, err := r.Shade(g, 256)
		if err != nil {
			b.Fatal(err)
		}
		_ = img.Release()
	}
}
