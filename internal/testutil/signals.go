package testutil

import (
	"math"
	"math/rand"
)

// ConstantF32 returns a slice of length n filled with value.
func ConstantF32(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// SineF32 generates a deterministic sine wave as float32 samples.
func SineF32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// NoiseF32 generates uniform white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func NoiseF32(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// PlantStrided writes values into the view x[offset + i*stride], leaving all
// other slots untouched. The caller guarantees the view stays in bounds.
func PlantStrided(x []float32, values []float32, stride, offset int) {
	ix := offset
	for _, v := range values {
		x[ix] = v
		ix += stride
	}
}

// GatherStrided copies n elements from the view x[offset + i*stride] into a
// new contiguous slice.
func GatherStrided(x []float32, n, stride, offset int) []float32 {
	out := make([]float32, n)
	ix := offset
	for i := range out {
		out[i] = x[ix]
		ix += stride
	}
	return out
}
