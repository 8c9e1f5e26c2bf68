package dashboard

import (
	"fmt"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/bilingui/skillrings/internal/stats"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

// renderLegend renders one chip per skill: a gradient dot, the name,
// and the score percentage. The chips are the sole selection surface;
// the rings themselves are never hit-tested.
func (d *DashboardScreen) renderLegend(width int) string {
	chips := make([]string, 0, stats.SkillCount)
	for i, sk := range stats.Catalog() {
		chips = append(chips, d.renderChip(i, sk))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, chips...)
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(row)
}

// renderChip renders a single legend chip. A terminal cell grid cannot
// scale glyphs, so the selected chip's scale-up is rendered as eased
// extra padding plus a bold border.
func (d *DashboardScreen) renderChip(i int, sk stats.Skill) string {
	selected := i == d.selected
	focused := i == d.cursor

	score := d.stats.Score(sk.Index)
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(sk.ColorStart)).
		Render("●")
	label := fmt.Sprintf("%s %s %d%%", dot, sk.Name, int(math.Round(score*100)))

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch {
	case selected:
		// Eased horizontal growth stands in for the scale animation.
		pad := 1 + int(math.Round(d.chipScale()))
		if pad < 1 {
			pad = 1
		}
		style = style.
			Bold(true).
			Padding(0, pad).
			BorderForeground(lipgloss.Color(sk.ColorEnd)).
			Foreground(theme.Text)
	case focused:
		style = style.
			BorderForeground(theme.TextDim).
			Foreground(theme.Text)
	default:
		style = style.
			BorderForeground(theme.Border).
			Foreground(theme.TextDim)
	}

	return style.Render(label)
}
