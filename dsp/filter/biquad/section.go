package biquad

// Coefficients holds one second-order section with a0 normalised to 1:
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// Sections run in Direct Form II transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// which is the state layout of a length-3 zerophase.Lfilter.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Section is one biquad with its delay line.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with zero state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Reset clears the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay line [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState loads the delay line.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
