package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"beamlab/internal/member"
)

const inspectSamples = 241

var quantityTitles = map[member.Quantity]string{
	member.ShearForce:    "shear force V",
	member.BendingMoment: "bending moment M",
	member.AxialForce:    "axial force N",
	member.SlopeCurve:    "slope theta",
	member.Deflected:     "deflection delta",
}

type inspector struct {
	members       []*member.Member
	memberIdx     int
	quantityIdx   int
	cursor        int
	diagram       *member.Diagram
	err           error
	width, height int
}

// NewInspector builds the interactive diagram browser over a set of
// analyzed members.
func NewInspector(members []*member.Member) *inspector {
	m := &inspector{members: members, width: 80, height: 24}
	m.resample()
	return m
}

func (m *inspector) resample() {
	mem := m.members[m.memberIdx]
	q := member.Quantities[m.quantityIdx]
	m.diagram, m.err = mem.Sample(q, inspectSamples)
	if m.cursor >= inspectSamples {
		m.cursor = inspectSamples - 1
	}
}

func (m inspector) Init() tea.Cmd { return nil }

func (m inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m inspector) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < inspectSamples-1 {
			m.cursor++
		}
	case "H":
		m.cursor -= inspectSamples / 20
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "L":
		m.cursor += inspectSamples / 20
		if m.cursor >= inspectSamples {
			m.cursor = inspectSamples - 1
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = inspectSamples - 1
	case "tab":
		m.quantityIdx = (m.quantityIdx + 1) % len(member.Quantities)
		m.resample()
	case "shift+tab":
		m.quantityIdx = (m.quantityIdx - 1 + len(member.Quantities)) % len(member.Quantities)
		m.resample()
	case "up", "k":
		m.memberIdx = (m.memberIdx - 1 + len(m.members)) % len(m.members)
		m.resample()
	case "down", "j":
		m.memberIdx = (m.memberIdx + 1) % len(m.members)
		m.resample()
	}
	return m, nil
}

func (m inspector) View() string {
	if m.err != nil {
		return "error: " + m.err.Error() + "\n"
	}

	mem := m.members[m.memberIdx]
	q := member.Quantities[m.quantityIdx]
	x := m.diagram.X[m.cursor]

	cw := m.width - 4
	if cw < 20 {
		cw = 20
	}
	ch := m.height - 9
	if ch < 5 {
		ch = 5
	}

	canvas := NewCanvas(cw, ch)
	view := NewSeriesView(canvas, m.diagram.Y)
	view.DrawAxis()
	view.DrawSeries(m.diagram.Y)
	view.DrawMarker(m.cursor, inspectSamples, m.diagram.Y[m.cursor])

	var b strings.Builder
	b.WriteString("  " + header.Render(strings.ToUpper(mem.Name())) +
		subtle.Render(fmt.Sprintf("  %s  (%d/%d)", quantityTitles[q], m.memberIdx+1, len(m.members))) + "\n\n")
	b.WriteString(canvas.String())
	b.WriteString("\n  " + m.readout(mem, x) + "\n")
	b.WriteString("\n  " + hintBar(
		"h/l", "scrub", "tab", "quantity", "j/k", "member", "g/G", "ends", "q", "quit",
	) + "\n")
	return b.String()
}

// readout formats the full response state at the cursor position.
func (m inspector) readout(mem *member.Member, x float64) string {
	v, _ := mem.Shear(x)
	mo, _ := mem.Moment(x)
	n, _ := mem.Axial(x)
	th, errTh := mem.Slope(x)
	de, errDe := mem.Deflection(x)

	parts := []string{
		dim.Render("x ") + white.Render(fmt.Sprintf("%8.3f", x)),
		dim.Render("V ") + cyan.Render(fmt.Sprintf("%10.4f", v)),
		dim.Render("M ") + green.Render(fmt.Sprintf("%10.4f", mo)),
		dim.Render("N ") + yellow.Render(fmt.Sprintf("%10.4f", n)),
	}
	if errTh == nil {
		parts = append(parts, dim.Render("θ ")+white.Render(fmt.Sprintf("%10.6f", th)))
	}
	if errDe == nil {
		parts = append(parts, dim.Render("δ ")+white.Render(fmt.Sprintf("%10.6f", de)))
	}
	return strings.Join(parts, dim.Render("  │ "))
}

// RunInspector launches the full-screen inspector.
func RunInspector(members []*member.Member) error {
	if len(members) == 0 {
		return fmt.Errorf("viz: no members to inspect")
	}
	_, err := tea.NewProgram(NewInspector(members), tea.WithAltScreen()).Run()
	return err
}
