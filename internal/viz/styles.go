package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	header = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	keycap = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

// hintBar renders alternating key/action pairs for the footer line.
func hintBar(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(subtle.Render("  "))
		}
		b.WriteString(keycap.Render(pairs[i]) + subtle.Render(" "+pairs[i+1]))
	}
	return b.String()
}
