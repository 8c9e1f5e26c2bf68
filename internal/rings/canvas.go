package rings

import (
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Canvas rasterizes drawing commands onto a square pixel grid and
// renders it with half-block characters, two pixel rows per terminal
// row. Terminal cells are roughly twice as tall as wide, so half
// blocks give near-square pixels.
type Canvas struct {
	size       int
	background colorful.Color
	pixels     []colorful.Color
}

// NewCanvas creates a canvas of size x size pixels filled with the
// background color. Odd sizes are rounded up so rows pair evenly.
func NewCanvas(size int, background colorful.Color) *Canvas {
	if size < 0 {
		size = 0
	}
	if size%2 == 1 {
		size++
	}
	c := &Canvas{
		size:       size,
		background: background,
		pixels:     make([]colorful.Color, size*size),
	}
	for i := range c.pixels {
		c.pixels[i] = background
	}
	return c
}

// Size returns the canvas side length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// Paint rasterizes the commands in order; later commands draw over
// earlier ones, translucent ones blend with what is underneath.
func (c *Canvas) Paint(cmds []Command) {
	for _, cmd := range cmds {
		switch v := cmd.(type) {
		case Arc:
			c.paintArc(v)
		case Dot:
			c.paintDot(v)
		}
	}
}

func (c *Canvas) paintArc(a Arc) {
	if a.Sweep <= 0 || a.Width <= 0 {
		return
	}
	inner := a.Radius - a.Width/2
	outer := a.Radius + a.Width/2

	minX, maxX := boundRange(a.CX, outer, c.size)
	minY, maxY := boundRange(a.CY, outer, c.size)

	fullCircle := a.Sweep >= 2*math.Pi

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - a.CX
			dy := float64(y) + 0.5 - a.CY
			dist := math.Hypot(dx, dy)
			if dist < inner || dist > outer {
				continue
			}
			if !fullCircle {
				angle := math.Atan2(dy, dx)
				if !angleWithin(angle, a.Start, a.Sweep) {
					continue
				}
			}
			c.blend(x, y, a.Color, a.Opacity)
		}
	}
}

func (c *Canvas) paintDot(d Dot) {
	if d.Radius <= 0 {
		return
	}
	minX, maxX := boundRange(d.CX, d.Radius, c.size)
	minY, maxY := boundRange(d.CY, d.Radius, c.size)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - d.CX
			dy := float64(y) + 0.5 - d.CY
			if math.Hypot(dx, dy) > d.Radius {
				continue
			}
			c.blend(x, y, d.Color, d.Opacity)
		}
	}
}

// blend composites a color over the current pixel at the given opacity.
func (c *Canvas) blend(x, y int, color colorful.Color, opacity float64) {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return
	}
	if opacity >= 1 {
		c.pixels[y*c.size+x] = color
		return
	}
	if opacity <= 0 {
		return
	}
	under := c.pixels[y*c.size+x]
	c.pixels[y*c.size+x] = under.BlendRgb(color, opacity)
}

// At returns the pixel color at (x, y); out-of-bounds reads return the
// background.
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.size || y >= c.size {
		return c.background
	}
	return c.pixels[y*c.size+x]
}

// String renders the grid as styled half-block rows: the upper pixel
// of each pair becomes the foreground of '▀', the lower the background.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.size; y += 2 {
		for x := 0; x < c.size; x++ {
			upper := c.pixels[y*c.size+x]
			lower := c.pixels[(y+1)*c.size+x]
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(upper.Hex())).
				Background(lipgloss.Color(lower.Hex())).
				Render("▀")
			b.WriteString(cell)
		}
		if y+2 < c.size {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// boundRange clips a center±extent span to [0, size).
func boundRange(center, extent float64, size int) (lo, hi int) {
	lo = int(math.Floor(center - extent))
	hi = int(math.Ceil(center + extent))
	if lo < 0 {
		lo = 0
	}
	if hi > size-1 {
		hi = size - 1
	}
	return lo, hi
}

// angleWithin reports whether angle lies on the clockwise sweep
// starting at start. Both are normalized to [0, 2π).
func angleWithin(angle, start, sweep float64) bool {
	if sweep >= 2*math.Pi {
		return true
	}
	delta := normalizeAngle(angle - start)
	return delta <= sweep
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
