package beam

import "fmt"

// SegmentData holds everything the upstream solver knows about one
// continuous span: geometry, load intensities, and the boundary values at
// the start of the span. Any consistent unit system may be used.
type SegmentData struct {
	X1, X2 float64 // start/end position along the parent member

	W1, W2 float64 // transverse distributed load intensity at each end
	Q1, Q2 float64 // axial distributed load intensity at each end

	V1 float64 // internal shear at the start
	M1 float64 // internal moment at the start
	N1 float64 // internal axial force at the start

	Theta1 float64 // slope at the start
	Delta1 float64 // transverse displacement at the start

	EI float64 // flexural stiffness
}

// Segment is an immutable continuous span of a beam. Loads vary linearly
// between the two ends and no discontinuity (point load, support, or break
// in the load function) occurs inside the span.
type Segment struct {
	d SegmentData
	l float64
}

// NewSegment validates the geometry and freezes the segment. The length is
// derived from the end positions and never stored independently of them.
func NewSegment(d SegmentData) (*Segment, error) {
	if d.X2 <= d.X1 {
		return nil, fmt.Errorf("%w: x1=%g x2=%g", ErrInvalidGeometry, d.X1, d.X2)
	}
	return &Segment{d: d, l: d.X2 - d.X1}, nil
}

// X1 returns the start position along the parent member.
func (s *Segment) X1() float64 { return s.d.X1 }

// X2 returns the end position along the parent member.
func (s *Segment) X2() float64 { return s.d.X2 }

// Length returns the span length x2-x1.
func (s *Segment) Length() float64 { return s.l }

// EI returns the flexural stiffness.
func (s *Segment) EI() float64 { return s.d.EI }

// Data returns a copy of the boundary data the segment was built from.
func (s *Segment) Data() SegmentData { return s.d }

// w returns the transverse load intensity at x (measured from the start).
func (s *Segment) w(x float64) float64 {
	return s.d.W1 + (s.d.W2-s.d.W1)*x/s.l
}

// q returns the axial load intensity at x (measured from the start).
func (s *Segment) q(x float64) float64 {
	return s.d.Q1 + (s.d.Q2-s.d.Q1)*x/s.l
}
