// Package zerophase applies rational filters forward and backward so the
// phase responses cancel.
//
// [Lfilter] runs a transfer function in Direct Form II transposed with an
// explicit initial state. [LfilterZi] gives the state that makes the step
// response start in steady state. [Filter] and [Cascade] combine both with
// odd extension at the signal edges: Filter runs (b, a) polynomials and
// Cascade runs second-order sections, which keeps high-order designs
// accurate. Both solve their steady state once and can then be applied to
// any number of signals.
package zerophase
