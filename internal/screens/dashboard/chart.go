package dashboard

import (
	"image/color"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bilingui/skillrings/internal/rings"
	"github.com/bilingui/skillrings/internal/stats"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

// chartSize picks the ring canvas side length in pixels for the
// available content area. Two pixel rows fit in one terminal row, so
// height is the binding constraint on most terminals.
func chartSize(width, height int) int {
	size := height * 2
	if half := width / 2; half < size {
		size = half
	}
	if size > 96 {
		size = 96
	}
	if size < 24 {
		size = 24
	}
	return size
}

// renderChart rasterizes one frame of the radial chart.
func renderChart(st stats.Stats, progress float64, selected int, size int) string {
	bg, _ := colorful.Hex(theme.CanvasBackground)
	canvas := rings.NewCanvas(size, bg)
	canvas.Paint(rings.Render(st, progress, selected, float64(canvas.Size())))
	return canvas.String()
}

// fadeColor fades the center label in from the card background, which
// reads as a cross-fade between the outgoing and incoming label.
func fadeColor(fade float64) color.Color {
	return lipgloss.Color(rings.Lerp("#1E293B", "#F8FAFC", fade).Hex())
}

// fadeDimColor is the sublabel's counterpart to fadeColor.
func fadeDimColor(fade float64) color.Color {
	return lipgloss.Color(rings.Lerp("#1E293B", "#94A3B8", fade).Hex())
}

// fadeTo blends a foreground color toward the canvas background, used
// by the notifier's fade-out.
func fadeTo(hex string, fade float64) color.Color {
	return lipgloss.Color(rings.Lerp(theme.CanvasBackground, hex, fade).Hex())
}
