package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"beamlab/internal/member"
)

var imageTitles = map[member.Quantity]string{
	member.ShearForce:    "Shear Force Diagram",
	member.BendingMoment: "Bending Moment Diagram",
	member.AxialForce:    "Axial Force Diagram",
	member.SlopeCurve:    "Slope Diagram",
	member.Deflected:     "Deflected Shape",
}

var imageYLabels = map[member.Quantity]string{
	member.ShearForce:    "V",
	member.BendingMoment: "M",
	member.AxialForce:    "N",
	member.SlopeCurve:    "theta",
	member.Deflected:     "delta",
}

// SaveDiagramImage samples a member quantity and renders it with
// gonum/plot. The format follows the file extension (.png, .svg, .pdf).
func SaveDiagramImage(m *member.Member, q member.Quantity, n int, filename string) error {
	d, err := m.Sample(q, n)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s", m.Name(), imageTitles[q])
	p.X.Label.Text = "x"
	p.Y.Label.Text = imageYLabels[q]

	pts := make(plotter.XYs, len(d.X))
	for i := range d.X {
		pts[i] = plotter.XY{X: d.X[i], Y: d.Y[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 181, A: 255}
	p.Add(line)

	// Zero reference line
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: d.X[0], Y: 0},
		{X: d.X[len(d.X)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Mark the sampled extrema
	iMin, iMax := 0, 0
	for i, y := range d.Y {
		if y < d.Y[iMin] {
			iMin = i
		}
		if y > d.Y[iMax] {
			iMax = i
		}
	}
	marks, err := plotter.NewScatter(plotter.XYs{
		{X: d.X[iMin], Y: d.Y[iMin]},
		{X: d.X[iMax], Y: d.Y[iMax]},
	})
	if err != nil {
		return err
	}
	marks.GlyphStyle.Color = color.RGBA{R: 220, G: 50, B: 32, A: 255}
	marks.GlyphStyle.Radius = vg.Points(3)
	marks.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(marks)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
