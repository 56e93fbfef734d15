package window

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		b.Run("hamming/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Generate(TypeHamming, n)
			}
		})
	}
}
