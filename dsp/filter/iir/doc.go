// Package iir designs digital Butterworth and Bessel bandpass filters.
//
// Designs follow the analog-prototype route: a unit-cutoff lowpass
// prototype in zero/pole/gain form is mapped to a bandpass around the
// pre-warped edges, then discretised with the bilinear transform. The
// result can be exported as transfer-function polynomials or as a cascade
// of biquad sections.
package iir
