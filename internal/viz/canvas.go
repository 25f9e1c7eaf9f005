package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
const brailleBase = 0x2800

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
			c.Grid[i][j] = brailleBase
		}
	}
	return c
}

// SubWidth and SubHeight give the canvas size in sub-pixels.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
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

// IsSet reports whether the sub-pixel (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
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

// DrawCircle outlines a circle with the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		c.Set(cx+x, cy+y)
		c.Set(cx+y, cy+x)
		c.Set(cx-y, cy+x)
		c.Set(cx-x, cy+y)
		c.Set(cx-x, cy-y)
		c.Set(cx-y, cy-x)
		c.Set(cx+y, cy-x)
		c.Set(cx+x, cy-y)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// Or lights every pixel that is lit in o. Both canvases must share a size.
func (c *Canvas) Or(o *Canvas) {
	for row := 0; row < c.Height && row < o.Height; row++ {
		for col := 0; col < c.Width && col < o.Width; col++ {
			c.Grid[row][col] |= o.Grid[row][col]
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

// Layer is a canvas drawn in a single style.
type Layer struct {
	Canvas *Canvas
	Style  lipgloss.Style
}

// Compose merges same-sized layers into one braille image. A cell takes the
// style of the last layer that lights it; runs of equally styled cells are
// rendered together.
func Compose(layers ...Layer) string {
	if len(layers) == 0 {
		return ""
	}
	w, h := layers[0].Canvas.Width, layers[0].Canvas.Height

	var b strings.Builder
	run := make([]rune, 0, w)
	for row := 0; row < h; row++ {
		owner := -1
		run = run[:0]
		for col := 0; col < w; col++ {
			cell := rune(brailleBase)
			top := -1
			for i, l := range layers {
				if v := l.Canvas.Grid[row][col]; v != brailleBase {
					cell |= v
					top = i
				}
			}
			if top != owner && len(run) > 0 {
				b.WriteString(renderRun(layers, owner, run))
				run = run[:0]
			}
			owner = top
			run = append(run, cell)
		}
		b.WriteString(renderRun(layers, owner, run))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderRun(layers []Layer, owner int, run []rune) string {
	if owner < 0 {
		return string(run)
	}
	return layers[owner].Style.Render(string(run))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
