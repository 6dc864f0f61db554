package strided

import "math"

// Mean returns the arithmetic mean of the n-element view x[offset + i*stride].
//
// Returns NaN for n <= 0 and propagates any NaN among the selected elements.
// A zero stride aliases a single buffer slot, so the mean is that element.
// The running mean is accumulated incrementally in float64, which keeps the
// intermediate sum bounded for long views.
func Mean(n int, x []float32, stride, offset int) float32 {
	if n <= 0 {
		return float32(math.NaN())
	}

	if n == 1 || stride == 0 {
		return x[offset]
	}

	mean := float64(x[offset])

	ix := offset
	for i := 1; i < n; i++ {
		ix += stride
		mean += (float64(x[ix]) - mean) / float64(i+1)
	}

	return float32(mean)
}
