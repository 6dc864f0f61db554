package strided

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-stats/internal/testutil"
)

func BenchmarkStdev(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096, 16384, 65536}
	for _, n := range sizes {
		x := testutil.SineF32(440, 48000, 1.0, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))

			for range b.N {
				Stdev(n, 1, x, 1, 0)
			}
		})
	}
}

func BenchmarkStdevStrided(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096, 16384}
	for _, n := range sizes {
		x := testutil.SineF32(440, 48000, 1.0, 2*n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))

			for range b.N {
				Stdev(n, 1, x, 2, 0)
			}
		})
	}
}

func BenchmarkMean(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		x := testutil.SineF32(440, 48000, 1.0, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))

			for range b.N {
				Mean(n, x, 1, 0)
			}
		})
	}
}
