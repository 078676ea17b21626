package threshold_test

import (
	"fmt"

	"github.com/cwbudde/algo-find1st/measure/threshold"
)

func ExampleImpulseStart() {
	ir := []float64{0.001, -0.002, 0.004, 0.3, 1, 0.6, 0.2}

	start, err := threshold.ImpulseStart(ir, 0.1)
	if err != nil {
		panic(err)
	}
	fmt.Println(start)
	// Output:
	// 3
}

func ExampleFirstAbove() {
	// Report the first clipped sample.
	x := []float64{0.5, 0.99, -1.0, 1.02, 0.7}

	i, _ := threshold.FirstAbove(x, 1)
	fmt.Println(i)
	// Output:
	// 3
}
