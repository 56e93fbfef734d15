// Package biquad runs second-order sections.
//
// A [Section] filters in Direct Form II transposed with an explicit delay
// line; a [Chain] cascades sections behind an input gain. The delay line
// can be loaded with [Chain.SetState], which is how steady-state initial
// conditions enter a cascade.
package biquad
