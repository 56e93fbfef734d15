package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-bandfilter/dsp/core"
)

func ExampleArray_Lanes() {
	// Two channels of three samples; time runs along axis 1.
	x, _ := core.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)

	lanes, _ := x.Lanes(1)
	for _, l := range lanes {
		fmt.Println(x.ReadLane(l, nil))
	}

	// Output:
	// [1 2 3]
	// [4 5 6]
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	core.Reverse(buf)
	fmt.Println(buf)

	// Output:
	// [0 0 2 1]
}
