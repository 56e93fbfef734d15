// Package fir designs linear-phase FIR bandpass filters.
//
// [Firls] computes frequency-domain least-squares coefficients for a
// piecewise-linear magnitude target. [Fir1] builds the classic windowed
// bandpass on top of it: a {0, 1, 0} magnitude target, a Hamming taper and
// unity gain at the band centre. Both are pure functions; the denominator of
// every design in this package is 1.
//
// Frequencies are expressed as fractions of the Nyquist frequency.
package fir
