// Package strided provides statistical kernels over strided views into
// single-precision sample buffers. A view is described by an element count n,
// a signed stride, and a starting offset; logical element i lives at
// x[offset + i*stride]. Kernels only read the buffer, accumulate in float64
// using one-pass numerically stable updates, and signal degenerate inputs
// with a float32 NaN instead of an error.
package strided
