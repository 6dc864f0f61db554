// Package moments provides a streaming accumulator for mean and standard
// deviation over single-precision samples. It runs the same one-pass Welford
// update as package strided, so accumulating a whole view and reading the
// result matches the one-shot kernels.
package moments

import "math"

// Accumulator tracks running count, mean, and sum of squared deviations.
// Samples arrive as float32 blocks and are accumulated in float64. Each
// sample is processed individually to guarantee results independent of block
// boundaries. The zero value is ready to use.
type Accumulator struct {
	n    int
	mean float64
	m2   float64
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Update adds a contiguous block of samples to the running statistics.
func (a *Accumulator) Update(x []float32) {
	for _, v := range x {
		a.add(float64(v))
	}
}

// UpdateStrided adds the n-element view x[offset + i*stride], using the same
// traversal rule as the strided kernels. A zero stride adds the same buffer
// slot n times. Non-positive n adds nothing. The caller guarantees the view
// stays within bounds.
func (a *Accumulator) UpdateStrided(n int, x []float32, stride, offset int) {
	ix := offset
	for i := 0; i < n; i++ {
		a.add(float64(x[ix]))
		ix += stride
	}
}

func (a *Accumulator) add(v float64) {
	a.n++
	delta := v - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (v - a.mean)
}

// Count returns the number of accumulated samples.
func (a *Accumulator) Count() int {
	return a.n
}

// Mean returns the running mean. Returns NaN if no samples were accumulated.
func (a *Accumulator) Mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}

	return a.mean
}

// Variance returns the accumulated variance with divisor count - correction.
// Returns NaN if no samples were accumulated or the divisor is not positive.
func (a *Accumulator) Variance(correction float64) float64 {
	if a.n == 0 {
		return math.NaN()
	}

	div := float64(a.n) - correction
	if div <= 0 {
		return math.NaN()
	}

	m2 := a.m2
	if m2 < 0 {
		m2 = 0
	}

	return m2 / div
}

// Stdev returns the accumulated standard deviation with divisor
// count - correction. Returns NaN under the same conditions as [Variance].
func (a *Accumulator) Stdev(correction float64) float64 {
	return math.Sqrt(a.Variance(correction))
}

// Merge folds the samples accumulated by other into a. The result matches
// accumulating both sample streams into a single Accumulator, up to float64
// rounding (Chan et al. pairwise combination).
func (a *Accumulator) Merge(other *Accumulator) {
	if other.n == 0 {
		return
	}

	if a.n == 0 {
		*a = *other
		return
	}

	n := a.n + other.n
	delta := other.mean - a.mean

	a.mean += delta * float64(other.n) / float64(n)
	a.m2 += other.m2 + delta*delta*float64(a.n)*float64(other.n)/float64(n)
	a.n = n
}

// Reset clears all accumulated data, allowing the Accumulator to be reused.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}
