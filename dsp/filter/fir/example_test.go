package fir_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/fir"
)

func ExampleFir1() {
	// 8–12 Hz at 256 Hz sampling, edges in Nyquist units.
	h, err := fir.Fir1(96, 8.0/128, 12.0/128)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(h))
	fmt.Printf("%.6f\n", cmplx.Abs(fir.Response(h, 10.0/128)))
	// Output:
	// 97
	// 1.000000
}
