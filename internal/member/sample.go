package member

import (
	"fmt"
	"sync"
)

// Quantity selects which response function a diagram samples.
type Quantity string

const (
	ShearForce    Quantity = "shear"
	BendingMoment Quantity = "moment"
	AxialForce    Quantity = "axial"
	SlopeCurve    Quantity = "slope"
	Deflected     Quantity = "deflection"
)

// Quantities lists every diagram quantity in display order.
var Quantities = []Quantity{ShearForce, BendingMoment, AxialForce, SlopeCurve, Deflected}

// Diagram holds exact closed-form evaluations at equally spaced member
// positions. Values are not interpolated.
type Diagram struct {
	Member   string
	Quantity Quantity
	X        []float64
	Y        []float64
}

func (m *Member) eval(q Quantity, x float64) (float64, error) {
	switch q {
	case ShearForce:
		return m.Shear(x)
	case BendingMoment:
		return m.Moment(x)
	case AxialForce:
		return m.Axial(x)
	case SlopeCurve:
		return m.Slope(x)
	case Deflected:
		return m.Deflection(x)
	default:
		return 0, fmt.Errorf("member: unknown quantity %q", q)
	}
}

// Eval returns the named response quantity at member position x.
func (m *Member) Eval(q Quantity, x float64) (float64, error) {
	return m.eval(q, x)
}

// Sample evaluates q at n equally spaced positions across the member
// (n >= 2, endpoints included).
func (m *Member) Sample(q Quantity, n int) (*Diagram, error) {
	if n < 2 {
		return nil, fmt.Errorf("member: need at least 2 sample points, got %d", n)
	}

	x1, _ := m.Span()
	length := m.Length()
	d := &Diagram{
		Member:   m.name,
		Quantity: q,
		X:        make([]float64, n),
		Y:        make([]float64, n),
	}

	for i := 0; i < n; i++ {
		x := x1 + length*float64(i)/float64(n-1)
		y, err := m.eval(q, x)
		if err != nil {
			return nil, err
		}
		d.X[i] = x
		d.Y[i] = y
	}
	return d, nil
}

// SampleAll samples one quantity across many members concurrently. Members
// are independent and read-only, so the fan-out needs no coordination
// beyond the final join.
func SampleAll(members []*Member, q Quantity, n int) ([]*Diagram, error) {
	diagrams := make([]*Diagram, len(members))
	errs := make([]error, len(members))

	var wg sync.WaitGroup
	for i, m := range members {
		wg.Add(1)
		go func(idx int, m *Member) {
			defer wg.Done()
			diagrams[idx], errs[idx] = m.Sample(q, n)
		}(i, m)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return diagrams, nil
}
