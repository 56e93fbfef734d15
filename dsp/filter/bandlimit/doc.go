// Package bandlimit band-limits N-dimensional signals along one axis with
// zero phase distortion.
//
// A [Method] selects the design: a windowed least-squares FIR whose order
// follows from the sample rate and the low band edge, or a Butterworth or
// Bessel bandpass of explicit order. [Design] turns a method into a [Plan];
// [Apply] designs once and runs the plan forward and backward over every
// lane of the time axis.
package bandlimit
