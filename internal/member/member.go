// Package member assembles solver-published beam segments into a whole
// member and answers response queries in member coordinates.
package member

import (
	"errors"
	"fmt"
	"math"

	"beamlab/internal/beam"
)

var (
	// ErrEmpty indicates a member with no segments.
	ErrEmpty = errors.New("member: no segments")

	// ErrDiscontinuous indicates segments that are out of order or leave a
	// gap; the upstream solver must publish a contiguous span set.
	ErrDiscontinuous = errors.New("member: segments are not contiguous")

	// ErrOutOfRange indicates a query position outside the member span.
	ErrOutOfRange = errors.New("member: position outside member span")
)

// continuity tolerance between adjacent segment boundaries, relative to
// the member span
const joinTol = 1e-9

// Member is an ordered, contiguous set of segments covering one structural
// member. Like its segments it is read-only after construction, so any
// number of goroutines may query it without coordination.
type Member struct {
	name string
	segs []*beam.Segment
}

// New validates segment ordering and contiguity and freezes the member.
func New(name string, segs []*beam.Segment) (*Member, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}

	span := segs[len(segs)-1].X2() - segs[0].X1()
	for i := 1; i < len(segs); i++ {
		gap := segs[i].X1() - segs[i-1].X2()
		if math.Abs(gap) > joinTol*math.Abs(span) {
			return nil, fmt.Errorf("%w: %s at x=%g (gap %g)",
				ErrDiscontinuous, name, segs[i].X1(), gap)
		}
	}

	return &Member{name: name, segs: segs}, nil
}

// Name returns the member's identifier.
func (m *Member) Name() string { return m.name }

// Segments returns the member's segments in order.
func (m *Member) Segments() []*beam.Segment { return m.segs }

// Span returns the member's start and end positions.
func (m *Member) Span() (x1, x2 float64) {
	return m.segs[0].X1(), m.segs[len(m.segs)-1].X2()
}

// Length returns the total member length.
func (m *Member) Length() float64 {
	x1, x2 := m.Span()
	return x2 - x1
}

// locate finds the segment containing the member-coordinate position x and
// returns it with x converted to segment-local coordinates.
func (m *Member) locate(x float64) (*beam.Segment, float64, error) {
	x1, x2 := m.Span()
	if x < x1 || x > x2 {
		return nil, 0, fmt.Errorf("%w: x=%g span=[%g, %g]", ErrOutOfRange, x, x1, x2)
	}
	for _, s := range m.segs {
		if x <= s.X2() {
			return s, x - s.X1(), nil
		}
	}
	// x == x2 up to float noise
	last := m.segs[len(m.segs)-1]
	return last, x - last.X1(), nil
}

// Shear returns the shear force at member position x.
func (m *Member) Shear(x float64) (float64, error) {
	s, lx, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	return s.Shear(lx), nil
}

// Moment returns the bending moment at member position x.
func (m *Member) Moment(x float64) (float64, error) {
	s, lx, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	return s.Moment(lx), nil
}

// Axial returns the axial force at member position x.
func (m *Member) Axial(x float64) (float64, error) {
	s, lx, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	return s.Axial(lx), nil
}

// Slope returns the elastic-curve slope at member position x.
func (m *Member) Slope(x float64) (float64, error) {
	s, lx, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	return s.Slope(lx)
}

// Deflection returns the transverse displacement at member position x.
func (m *Member) Deflection(x float64) (float64, error) {
	s, lx, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	return s.Deflection(lx)
}

// Extrema summarizes the force envelope of the whole member. Each bound is
// exact: the per-segment solvers are exact and a member extremum is always
// attained on some segment.
type Extrema struct {
	MaxShear, MinShear   float64
	MaxMoment, MinMoment float64
	MaxAxial, MinAxial   float64
}

// Envelope returns the member-wide force extrema.
func (m *Member) Envelope() Extrema {
	e := Extrema{
		MaxShear:  math.Inf(-1),
		MinShear:  math.Inf(1),
		MaxMoment: math.Inf(-1),
		MinMoment: math.Inf(1),
		MaxAxial:  math.Inf(-1),
		MinAxial:  math.Inf(1),
	}
	for _, s := range m.segs {
		e.MaxShear = math.Max(e.MaxShear, s.MaxShear())
		e.MinShear = math.Min(e.MinShear, s.MinShear())
		e.MaxMoment = math.Max(e.MaxMoment, s.MaxMoment())
		e.MinMoment = math.Min(e.MinMoment, s.MinMoment())
		e.MaxAxial = math.Max(e.MaxAxial, s.MaxAxial())
		e.MinAxial = math.Min(e.MinAxial, s.MinAxial())
	}
	return e
}
