// Package export writes diagrams to standalone files: hand-built SVG for
// lightweight output, gonum/plot for publication images.
package export

import (
	"fmt"
	"os"
	"strings"

	"beamlab/internal/member"
	"beamlab/internal/viz"
)

var strokeColors = map[member.Quantity]string{
	member.ShearForce:    "#00ccff",
	member.BendingMoment: "#00ff88",
	member.AxialForce:    "#ffcc00",
	member.SlopeCurve:    "#ff88ff",
	member.Deflected:     "#ffffff",
}

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// DiagramToSVG renders a sampled diagram as an SVG polyline with the
// zero axis marked when it falls inside the value range.
func DiagramToSVG(d *member.Diagram, width, height int) string {
	if d == nil || len(d.X) < 2 {
		return ""
	}

	minX, maxX := d.X[0], d.X[len(d.X)-1]
	minY, maxY := d.Y[0], d.Y[0]
	for _, y := range d.Y {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	px := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	py := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	stroke := strokeColors[d.Quantity]
	if stroke == "" {
		stroke = "#00ff00"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if minY <= 0 && maxY >= 0 {
		y0 := py(0)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1" stroke-dasharray="4,3"/>
`, y0, width, y0))
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i := range d.X {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(d.X[i]), py(d.Y[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(d.X[i]), py(d.Y[i])))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="#888899" font-family="monospace" font-size="12">%s %s</text>
`, d.Member, d.Quantity))
	sb.WriteString("</svg>")
	return sb.String()
}

// SaveDiagramSVG samples a member quantity and writes the SVG file.
func SaveDiagramSVG(m *member.Member, q member.Quantity, n, width, height int, path string) error {
	d, err := m.Sample(q, n)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DiagramToSVG(d, width, height)), 0644)
}
