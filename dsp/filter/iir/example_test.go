package iir_test

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-bandfilter/dsp/filter/iir"
)

func ExampleBandpass() {
	f, err := iir.Bandpass(iir.Butterworth, 3, 0.1, 0.3)
	if err != nil {
		panic(err)
	}

	b, a := f.Polynomials()
	fmt.Println(len(b), len(a))
	fmt.Printf("%.4f %.4f\n", cmplx.Abs(f.Response(0.1)), cmplx.Abs(f.Response(0.3)))

	sections, _ := f.Sections()
	fmt.Println(len(sections))
	// Output:
	// 7 7
	// 0.7071 0.7071
	// 3
}
