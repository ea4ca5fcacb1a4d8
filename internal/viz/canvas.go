package viz

import (
	"math"
	"strings"
)

// Braille Patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// SeriesView maps diagram samples onto a canvas. Values are scaled so the
// whole series fits with a small margin; a zero axis is drawn whenever
// zero lies inside the value range.
type SeriesView struct {
	canvas     *Canvas
	minY, maxY float64
	cw, ch     int
}

func NewSeriesView(c *Canvas, ys []float64) *SeriesView {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	if !(maxY > minY) {
		// flat series: open a unit band so it draws mid-canvas
		minY -= 0.5
		maxY += 0.5
	}
	pad := (maxY - minY) * 0.05
	return &SeriesView{
		canvas: c,
		minY:   minY - pad,
		maxY:   maxY + pad,
		cw:     c.Width * 2,
		ch:     c.Height * 4,
	}
}

// project maps a sample index/value to sub-pixel coordinates.
func (v *SeriesView) project(i, n int, y float64) (int, int) {
	px := 0
	if n > 1 {
		px = i * (v.cw - 1) / (n - 1)
	}
	norm := (y - v.minY) / (v.maxY - v.minY)
	py := v.ch - 1 - int(norm*float64(v.ch-1))
	return px, py
}

// DrawSeries plots the polyline through all samples.
func (v *SeriesView) DrawSeries(ys []float64) {
	prevX, prevY := 0, 0
	for i, y := range ys {
		px, py := v.project(i, len(ys), y)
		if i > 0 {
			v.canvas.DrawLine(prevX, prevY, px, py)
		}
		prevX, prevY = px, py
	}
}

// DrawAxis draws the zero line if it is inside the view.
func (v *SeriesView) DrawAxis() {
	if v.minY > 0 || v.maxY < 0 {
		return
	}
	_, py := v.project(0, 2, 0)
	for x := 0; x < v.cw; x += 2 {
		v.canvas.Set(x, py)
	}
}

// DrawMarker highlights the sample at index i with a small blob.
func (v *SeriesView) DrawMarker(i, n int, y float64) {
	px, py := v.project(i, n, y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			v.canvas.Set(px+dx, py+dy)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
