package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bilingui/skillrings/internal/ui/theme"
)

// XPBar displays the learner's progress toward the next level as a
// horizontal bar with an optional "current / max XP" caption.
type XPBar struct {
	Label        string
	CurrentXP    int
	MaxXP        int
	ShowFraction bool
	Width        int
}

// NewXPBar creates a new XP progress bar.
func NewXPBar(label string, currentXP, maxXP int, showFraction bool, width int) XPBar {
	return XPBar{
		Label:        label,
		CurrentXP:    currentXP,
		MaxXP:        maxXP,
		ShowFraction: showFraction,
		Width:        width,
	}
}

// Percent returns the fill fraction in [0, 1].
func (p XPBar) Percent() float64 {
	if p.MaxXP <= 0 {
		return 0
	}
	pct := float64(p.CurrentXP) / float64(p.MaxXP)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// View renders the XP bar.
func (p XPBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	fractionWidth := 0
	fraction := ""
	if p.ShowFraction {
		fraction = fmt.Sprintf("  %d / %d XP", p.CurrentXP, p.MaxXP)
		fractionWidth = lipgloss.Width(fraction)
	}

	barWidth := p.Width - labelWidth - fractionWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowFraction {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fraction)
	}

	return result
}
