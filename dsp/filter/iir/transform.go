package iir

import "math/cmplx"

// LowpassToBandpass maps an analog lowpass prototype with unit cutoff to a
// bandpass centred at w0 rad/s with bandwidth bw rad/s.
//
// Each root r becomes the pair r*bw/2 ± sqrt((r*bw/2)^2 - w0^2). The excess
// of poles over zeros adds that many zeros at s = 0, and the gain is scaled
// by bw^degree.
func LowpassToBandpass(f ZPK, w0, bw float64) ZPK {
	degree := len(f.Poles) - len(f.Zeros)

	zeros := bandpassRoots(f.Zeros, w0, bw)
	for range degree {
		zeros = append(zeros, 0)
	}

	gain := f.Gain
	for range degree {
		gain *= bw
	}

	return ZPK{
		Zeros: zeros,
		Poles: bandpassRoots(f.Poles, w0, bw),
		Gain:  gain,
	}
}

func bandpassRoots(roots []complex128, w0, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(roots))
	w02 := complex(w0*w0, 0)
	half := complex(bw/2, 0)

	for _, r := range roots {
		rl := r * half
		d := cmplx.Sqrt(rl*rl - w02)
		out = append(out, rl+d, rl-d)
	}

	return out
}

// Bilinear discretises an analog filter with the bilinear transform
// s = 2*fs*(z-1)/(z+1).
//
// Excess poles put zeros at z = -1 (Nyquist).
func Bilinear(f ZPK, fs float64) ZPK {
	fs2 := complex(2*fs, 0)
	degree := len(f.Poles) - len(f.Zeros)

	num := complex(1, 0)
	zeros := make([]complex128, 0, len(f.Zeros)+degree)

	for _, z := range f.Zeros {
		zeros = append(zeros, (fs2+z)/(fs2-z))
		num *= fs2 - z
	}

	for range degree {
		zeros = append(zeros, -1)
	}

	den := complex(1, 0)
	poles := make([]complex128, len(f.Poles))

	for i, p := range f.Poles {
		poles[i] = (fs2 + p) / (fs2 - p)
		den *= fs2 - p
	}

	return ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  f.Gain * real(num/den),
	}
}
