// Package window generates taper windows used by FIR design.
//
// Symmetric windows (the default) satisfy w[n] == w[N-1-n] and are the form
// used to taper least-squares FIR coefficients. Periodic windows divide by N
// instead of N-1 and suit FFT framing.
package window
