package diagram

import (
	"strings"
	"testing"

	"beamlab/internal/beam"
	"beamlab/internal/member"
)

func testMember(t *testing.T) *member.Member {
	t.Helper()
	seg, err := beam.NewSegment(beam.SegmentData{
		X1: 0, X2: 10,
		W1: 2, W2: 2,
		V1: 10, Theta1: -2.0 * 1000 / (24 * 20000),
		EI: 20000,
	})
	if err != nil {
		t.Fatal(err)
	}
	m, err := member.New("B1", []*beam.Segment{seg})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestPlotCaption(t *testing.T) {
	m := testMember(t)
	d, err := m.Sample(member.BendingMoment, 21)
	if err != nil {
		t.Fatal(err)
	}

	out := Plot(d, 40, 8)
	if !strings.Contains(out, "B1: bending moment M") {
		t.Errorf("caption missing from plot:\n%s", out)
	}
}

func TestRenderMember(t *testing.T) {
	m := testMember(t)
	out, err := RenderMember(m, 21, 40, 6)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"B1", "shear force V", "deflection delta", "max moment"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestEnvelopeBox(t *testing.T) {
	m := testMember(t)
	out := EnvelopeBox(m)

	// max moment for w=2, L=10, V1=10 is wL^2/8 = 25 at midspan
	if !strings.Contains(out, "25.0000") {
		t.Errorf("envelope box missing midspan moment:\n%s", out)
	}
}
