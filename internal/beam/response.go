package beam

// Positions are measured from the segment start. Callers may evaluate
// outside [0, Length()] to extrapolate; extrema queries never do.

// Shear returns the internal shear force at x.
func (s *Segment) Shear(x float64) float64 {
	d, l := s.d, s.l
	return d.V1 - (d.W2-d.W1)/(2*l)*x*x - d.W1*x
}

// Moment returns the internal bending moment at x.
func (s *Segment) Moment(x float64) float64 {
	d, l := s.d, s.l
	return d.M1 + d.V1*x - (d.W2-d.W1)/(6*l)*x*x*x - d.W1/2*x*x
}

// Axial returns the internal axial force at x.
func (s *Segment) Axial(x float64) float64 {
	d, l := s.d, s.l
	return d.N1 + (d.Q2-d.Q1)/(2*l)*x*x + d.Q1*x
}

// Slope returns the slope of the elastic curve at x. It fails with
// ErrInvalidStiffness when the segment's EI is not positive.
func (s *Segment) Slope(x float64) (float64, error) {
	d, l := s.d, s.l
	if d.EI <= 0 {
		return 0, ErrInvalidStiffness
	}
	return d.Theta1 + (d.M1*x+d.V1/2*x*x-(d.W2-d.W1)/(24*l)*x*x*x*x-d.W1/6*x*x*x)/d.EI, nil
}

// Deflection returns the transverse displacement at x. It fails with
// ErrInvalidStiffness when the segment's EI is not positive.
func (s *Segment) Deflection(x float64) (float64, error) {
	d, l := s.d, s.l
	if d.EI <= 0 {
		return 0, ErrInvalidStiffness
	}
	x2 := x * x
	return d.Delta1 + d.Theta1*x +
		(d.M1/2*x2+d.V1/6*x2*x-(d.W2-d.W1)/(120*l)*x2*x2*x-d.W1/24*x2*x2)/d.EI, nil
}
