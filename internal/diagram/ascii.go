// Package diagram renders force and deformation diagrams for the terminal.
package diagram

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"beamlab/internal/member"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

var captions = map[member.Quantity]string{
	member.ShearForce:    "shear force V",
	member.BendingMoment: "bending moment M",
	member.AxialForce:    "axial force N",
	member.SlopeCurve:    "slope theta",
	member.Deflected:     "deflection delta",
}

// Plot renders one sampled diagram as an ASCII chart.
func Plot(d *member.Diagram, width, height int) string {
	caption := captions[d.Quantity]
	if caption == "" {
		caption = string(d.Quantity)
	}
	return asciigraph.Plot(d.Y,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("%s: %s", d.Member, caption)),
	)
}

// RenderMember stacks the force diagrams and the deflected shape for one
// member, sampled at n points.
func RenderMember(m *member.Member, n, width, height int) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.Name())) + "\n\n")

	for _, q := range []member.Quantity{member.ShearForce, member.BendingMoment, member.AxialForce, member.Deflected} {
		d, err := m.Sample(q, n)
		if err != nil {
			return "", err
		}
		b.WriteString(Plot(d, width, height))
		b.WriteString("\n\n")
	}

	b.WriteString(EnvelopeBox(m))
	return b.String(), nil
}

// EnvelopeBox renders the member's force extrema as a bordered summary.
func EnvelopeBox(m *member.Member) string {
	e := m.Envelope()
	lines := []struct {
		label string
		value float64
	}{
		{"max shear", e.MaxShear},
		{"min shear", e.MinShear},
		{"max moment", e.MaxMoment},
		{"min moment", e.MinMoment},
		{"max axial", e.MaxAxial},
		{"min axial", e.MinAxial},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Name()) + "\n")
	for _, l := range lines {
		b.WriteString(labelStyle.Render(l.label) + valueStyle.Render(fmt.Sprintf("%12.4f", l.value)) + "\n")
	}
	return borderStyle.Render(strings.TrimRight(b.String(), "\n"))
}
