// Package spectral computes distribution moments of a magnitude spectrum:
// the spectral centroid (weighted mean frequency) and spectral spread
// (weighted standard deviation around the centroid). The weighted moments
// use a one-pass incremental update, the weighted counterpart of the
// accumulation in package moments.
package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by AnalyzeSignal.
var (
	ErrEmptySignal       = errors.New("spectral: signal is empty")
	ErrInvalidSampleRate = errors.New("spectral: sample rate must be positive")
)

// Result holds the spectral distribution moments of a signal.
type Result struct {
	BinCount int
	Centroid float64 // weighted mean frequency (Hz)
	Spread   float64 // weighted standard deviation around the centroid (Hz)
}

// binFreq returns the frequency in Hz of bin i for a one-sided spectrum with
// the given bin count. fftSize = 2 * (binCount - 1).
func binFreq(i int, sampleRate float64, binCount int) float64 {
	return float64(i) * sampleRate / float64(2*(binCount-1))
}

// Moments returns the spectral centroid and spread of a one-sided magnitude
// spectrum (linear scale, NOT dB), treating the magnitudes as weights over
// the bin frequencies. Spectra with fewer than two bins or all-zero
// magnitudes yield 0, 0.
//
// The weighted mean and squared-deviation sum are maintained in a single
// pass; once the running mean settles on the frequency of the only nonzero
// bin, its deviation term is exactly zero, so a single-line spectrum has
// spread exactly 0.
func Moments(magnitude []float64, sampleRate float64) (centroid, spread float64) {
	n := len(magnitude)
	if n < 2 {
		return 0, 0
	}

	var wsum, mean, m2 float64

	for i, w := range magnitude {
		if w <= 0 {
			continue
		}

		f := binFreq(i, sampleRate, n)
		wsum += w
		delta := f - mean
		mean += delta * w / wsum
		m2 += w * delta * (f - mean)
	}

	if wsum == 0 {
		return 0, 0
	}

	if m2 < 0 {
		m2 = 0
	}

	return mean, math.Sqrt(m2 / wsum)
}

// AnalyzeSignal computes the spectral moments of a real-valued time-domain
// signal. The signal is windowed with a periodic Hann window, zero-padded to
// the next power of two, transformed with a forward FFT, and reduced to a
// one-sided magnitude spectrum before the moments are taken.
func AnalyzeSignal(signal []float64, sampleRate float64) (Result, error) {
	if len(signal) == 0 {
		return Result{}, ErrEmptySignal
	}

	if sampleRate <= 0 {
		return Result{}, ErrInvalidSampleRate
	}

	fftSize := nextPowerOf2(len(signal))

	windowed := make([]float64, fftSize)
	copy(windowed, signal)
	vecmath.MulBlockInPlace(windowed[:len(signal)], hann(len(signal)))

	inData := make([]complex128, fftSize)
	for i, v := range windowed {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("spectral: create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("spectral: forward FFT: %w", err)
	}

	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := range binCount {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	centroid, spread := Moments(mag, sampleRate)

	return Result{
		BinCount: binCount,
		Centroid: centroid,
		Spread:   spread,
	}, nil
}

// hann returns periodic Hann window coefficients of length n.
func hann(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n)))
	}

	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
