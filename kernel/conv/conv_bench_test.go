package conv

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-kernels/internal/signal"
)

func BenchmarkConvolveTo(b *testing.B) {
	signalLen := 4096
	responseLens := []int{3, 8, 32, 127}

	x := signal.Noise(1, 1, signalLen)

	for _, k := range allKernels(b) {
		for _, l2 := range responseLens {
			b.Run(fmt.Sprintf("%s/h=%d", k.Name(), l2), func(b *testing.B) {
				h := signal.Noise(2, 1, l2)
				dst := make([]float32, OutputLen(signalLen, l2))

				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := k.ConvolveTo(dst, x, h); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkConvolveScratchTo(b *testing.B) {
	x := signal.Noise(1, 1, 4096)
	h := signal.Noise(2, 1, 32)
	dst := make([]float32, OutputLen(len(x), len(h)))
	scratch := make([]float32, len(h))

	v, err := NewVector(8)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := v.ConvolveScratchTo(dst, x, h, scratch); err != nil {
			b.Fatal(err)
		}
	}
}
