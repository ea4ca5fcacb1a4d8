package beam

import "math"

// Extrema are exact: with linearly varying load, shear and axial force are
// at most quadratic in x and moment is at most cubic, so every extremum on
// [0, L] sits at an endpoint or at a real in-range root of the derivative.
// Each candidate set below always contains both endpoints; interior roots
// that are complex or fall outside the span are simply omitted.

// shearCandidates returns the positions where shear may be extreme.
// dV/dx = -w(x) is linear; its zero is at w1*L/(w1-w2) unless the load is
// uniform, in which case shear is monotonic and the endpoints govern.
func (s *Segment) shearCandidates() []float64 {
	d, l := s.d, s.l
	cands := []float64{0, l}
	if d.W1 != d.W2 {
		if x := d.W1 * l / (d.W1 - d.W2); x >= 0 && x <= l {
			cands = append(cands, x)
		}
	}
	return cands
}

// momentCandidates returns the positions where moment may be extreme.
// dM/dx = V(x) = a*x^2 + b*x + c with a=(w1-w2)/(2L), b=-w1, c=V1.
func (s *Segment) momentCandidates() []float64 {
	d, l := s.d, s.l
	a := (d.W1 - d.W2) / (2 * l)
	b := -d.W1
	c := d.V1

	cands := []float64{0, l}
	switch {
	case a == 0 && b == 0:
		// constant shear: no interior stationary point worth adding
	case a == 0:
		if x := -c / b; x >= 0 && x <= l {
			cands = append(cands, x)
		}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			break
		}
		r := math.Sqrt(disc)
		for _, x := range []float64{(-b + r) / (2 * a), (-b - r) / (2 * a)} {
			if x >= 0 && x <= l {
				cands = append(cands, x)
			}
		}
	}
	return cands
}

// axialCandidates returns the positions where axial force may be extreme.
func (s *Segment) axialCandidates() []float64 {
	d, l := s.d, s.l
	cands := []float64{0, l}
	if d.Q1 != d.Q2 {
		if x := l * d.Q1 / (d.Q1 - d.Q2); x >= 0 && x <= l {
			cands = append(cands, x)
		}
	}
	return cands
}

func extremeOver(cands []float64, f func(float64) float64) (max, min float64) {
	max = math.Inf(-1)
	min = math.Inf(1)
	for _, x := range cands {
		v := f(x)
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	return max, min
}

// MaxShear returns the largest shear force on the segment.
func (s *Segment) MaxShear() float64 {
	max, _ := extremeOver(s.shearCandidates(), s.Shear)
	return max
}

// MinShear returns the smallest shear force on the segment.
func (s *Segment) MinShear() float64 {
	_, min := extremeOver(s.shearCandidates(), s.Shear)
	return min
}

// MaxMoment returns the largest bending moment on the segment.
func (s *Segment) MaxMoment() float64 {
	max, _ := extremeOver(s.momentCandidates(), s.Moment)
	return max
}

// MinMoment returns the smallest bending moment on the segment.
func (s *Segment) MinMoment() float64 {
	_, min := extremeOver(s.momentCandidates(), s.Moment)
	return min
}

// MaxAxial returns the largest axial force on the segment.
func (s *Segment) MaxAxial() float64 {
	max, _ := extremeOver(s.axialCandidates(), s.Axial)
	return max
}

// MinAxial returns the smallest axial force on the segment.
func (s *Segment) MinAxial() float64 {
	_, min := extremeOver(s.axialCandidates(), s.Axial)
	return min
}
