package moments_test

import (
	"fmt"

	"github.com/cwbudde/algo-stats/moments"
)

func ExampleAccumulator() {
	acc := moments.NewAccumulator()
	acc.Update([]float32{1, 2})
	acc.Update([]float32{-2, 4})

	fmt.Printf("n=%d mean=%.2f stdev=%.1f\n", acc.Count(), acc.Mean(), acc.Stdev(1))

	// Output:
	// n=4 mean=1.25 stdev=2.5
}
