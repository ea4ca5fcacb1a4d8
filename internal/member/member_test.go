package member

import (
	"errors"
	"math"
	"testing"

	"beamlab/internal/beam"
)

func seg(t *testing.T, d beam.SegmentData) *beam.Segment {
	t.Helper()
	s, err := beam.NewSegment(d)
	if err != nil {
		t.Fatalf("segment construction failed: %v", err)
	}
	return s
}

// twoSpanMember builds a simply supported 10-unit beam with a midspan point
// load of 8, split by the solver into two zero-load segments.
func twoSpanMember(t *testing.T) *Member {
	t.Helper()
	const (
		p  = 8.0
		l  = 10.0
		ei = 1000.0
	)
	left := seg(t, beam.SegmentData{
		X1: 0, X2: l / 2,
		V1: p / 2, M1: 0,
		Theta1: -p * l * l / (16 * ei), Delta1: 0,
		EI: ei,
	})
	right := seg(t, beam.SegmentData{
		X1: l / 2, X2: l,
		V1: -p / 2, M1: p * l / 4,
		Theta1: 0, Delta1: -p * l * l * l / (48 * ei),
		EI: ei,
	})
	m, err := New("B1", []*beam.Segment{left, right})
	if err != nil {
		t.Fatalf("member construction failed: %v", err)
	}
	return m
}

func TestNewRejectsEmptyAndGapped(t *testing.T) {
	if _, err := New("B1", nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}

	a := seg(t, beam.SegmentData{X1: 0, X2: 4})
	b := seg(t, beam.SegmentData{X1: 5, X2: 10})
	if _, err := New("B1", []*beam.Segment{a, b}); !errors.Is(err, ErrDiscontinuous) {
		t.Errorf("expected ErrDiscontinuous, got %v", err)
	}
}

func TestQueriesAcrossSegments(t *testing.T) {
	m := twoSpanMember(t)

	if v, err := m.Shear(2); err != nil || math.Abs(v-4) > 1e-12 {
		t.Errorf("Shear(2) = %f, %v; want 4", v, err)
	}
	if v, err := m.Shear(8); err != nil || math.Abs(v-(-4)) > 1e-12 {
		t.Errorf("Shear(8) = %f, %v; want -4", v, err)
	}

	// peak moment P*L/4 = 20 at midspan
	if v, err := m.Moment(5); err != nil || math.Abs(v-20) > 1e-12 {
		t.Errorf("Moment(5) = %f, %v; want 20", v, err)
	}

	// moment is continuous across the segment joint
	lv, _ := m.Moment(5 - 1e-9)
	rv, _ := m.Moment(5 + 1e-9)
	if math.Abs(lv-rv) > 1e-6 {
		t.Errorf("moment jump at joint: %f vs %f", lv, rv)
	}

	if _, err := m.Shear(11); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := m.Shear(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestDeflectionBoundaryConditions(t *testing.T) {
	m := twoSpanMember(t)

	for _, x := range []float64{0, 10} {
		d, err := m.Deflection(x)
		if err != nil {
			t.Fatalf("Deflection(%g) failed: %v", x, err)
		}
		if math.Abs(d) > 1e-12 {
			t.Errorf("Deflection(%g) = %g, want 0 at support", x, d)
		}
	}

	// midspan deflection -P*L^3/48EI
	want := -8.0 * 1000 / (48 * 1000)
	d, err := m.Deflection(5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-want) > 1e-12 {
		t.Errorf("Deflection(5) = %f, want %f", d, want)
	}
}

func TestEnvelope(t *testing.T) {
	m := twoSpanMember(t)
	e := m.Envelope()

	if math.Abs(e.MaxShear-4) > 1e-12 || math.Abs(e.MinShear-(-4)) > 1e-12 {
		t.Errorf("shear envelope [%f, %f], want [-4, 4]", e.MinShear, e.MaxShear)
	}
	if math.Abs(e.MaxMoment-20) > 1e-12 {
		t.Errorf("MaxMoment = %f, want 20", e.MaxMoment)
	}
	if e.MinMoment > 0 {
		t.Errorf("MinMoment = %f, want <= 0", e.MinMoment)
	}
	if e.MaxShear < e.MinShear || e.MaxMoment < e.MinMoment || e.MaxAxial < e.MinAxial {
		t.Error("envelope bounds inverted")
	}
}

func TestSample(t *testing.T) {
	m := twoSpanMember(t)

	d, err := m.Sample(BendingMoment, 21)
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	if len(d.X) != 21 || len(d.Y) != 21 {
		t.Fatalf("expected 21 samples, got %d/%d", len(d.X), len(d.Y))
	}
	if d.X[0] != 0 || d.X[20] != 10 {
		t.Errorf("sample range [%f, %f], want [0, 10]", d.X[0], d.X[20])
	}

	// samples are exact evaluations
	for i, x := range d.X {
		want, err := m.Moment(x)
		if err != nil {
			t.Fatal(err)
		}
		if d.Y[i] != want {
			t.Errorf("sample %d at x=%f: %f != %f", i, x, d.Y[i], want)
		}
	}

	if _, err := m.Sample(BendingMoment, 1); err == nil {
		t.Error("expected error for n < 2")
	}
	if _, err := m.Sample(Quantity("bogus"), 5); err == nil {
		t.Error("expected error for unknown quantity")
	}
}

func TestSampleAll(t *testing.T) {
	members := []*Member{twoSpanMember(t), twoSpanMember(t), twoSpanMember(t)}

	diagrams, err := SampleAll(members, ShearForce, 50)
	if err != nil {
		t.Fatalf("SampleAll failed: %v", err)
	}
	if len(diagrams) != 3 {
		t.Fatalf("expected 3 diagrams, got %d", len(diagrams))
	}

	want, err := members[0].Sample(ShearForce, 50)
	if err != nil {
		t.Fatal(err)
	}
	for i, d := range diagrams {
		for j := range d.Y {
			if d.Y[j] != want.Y[j] {
				t.Errorf("diagram %d sample %d: %f != %f", i, j, d.Y[j], want.Y[j])
			}
		}
	}
}
