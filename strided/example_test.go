package strided_test

import (
	"fmt"

	"github.com/cwbudde/algo-stats/strided"
)

func ExampleStdev() {
	x := []float32{1, 2, 2, -7, -2, 3, 4, 2}

	// Every second element starting at index 0: 1, 2, -2, 4.
	sd := strided.Stdev(4, 1, x, 2, 0)
	fmt.Printf("stdev=%.1f\n", sd)

	// Output:
	// stdev=2.5
}

func ExampleMean() {
	x := []float32{1, -2, -4, 5, 0, 3}

	m := strided.Mean(6, x, 1, 0)
	fmt.Printf("mean=%.1f\n", m)

	// Output:
	// mean=0.5
}
