package dashboard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/bilingui/skillrings/internal/progression"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

const (
	// How long the toast stays fully visible before fading out.
	notifierHold = 3 * time.Second

	notifierFade = 500 * time.Millisecond
)

// Notifier shows a transient toast after an award: XP gained, an
// optional level-up banner, and any achievements the award unlocked.
// It is driven by the dashboard's frame tick and disappears on its own.
type Notifier struct {
	receipt progression.Receipt
	active  bool
	age     time.Duration
}

// Show replaces the current toast with a fresh one.
func (n *Notifier) Show(r progression.Receipt) {
	n.receipt = r
	n.active = true
	n.age = 0
}

// Tick advances the toast's lifetime.
func (n *Notifier) Tick(dt time.Duration) {
	if !n.active {
		return
	}
	n.age += dt
	if n.age >= notifierHold+notifierFade {
		n.active = false
	}
}

// Active reports whether a toast is currently showing.
func (n *Notifier) Active() bool {
	return n.active
}

// View renders the toast, or "" when nothing is showing.
func (n *Notifier) View(width int) string {
	if !n.active {
		return ""
	}

	// Fade by dimming toward the canvas background near end of life.
	fade := 1.0
	if n.age > notifierHold {
		fade = 1 - float64(n.age-notifierHold)/float64(notifierFade)
		if fade < 0 {
			fade = 0
		}
	}

	var lines []string

	gainedText := fmt.Sprintf("+%d XP", n.receipt.Amount)
	if n.receipt.Multiplier > 1 {
		gainedText += fmt.Sprintf("  🔥 ×%.1f streak bonus", n.receipt.Multiplier)
	}
	gained := lipgloss.NewStyle().
		Foreground(fadeTo(theme.SuccessHex, fade)).
		Bold(true).
		Render(gainedText)
	lines = append(lines, gained)

	if n.receipt.LeveledUp {
		banner := lipgloss.NewStyle().
			Foreground(fadeTo(theme.GoldHex, fade)).
			Bold(true).
			Render(fmt.Sprintf("⬆ LEVEL UP!  Level %d · %s",
				n.receipt.After.Level, progression.TierName(n.receipt.After.Level)))
		lines = append(lines, banner)
	}

	for _, a := range n.receipt.Achievements {
		unlock := lipgloss.NewStyle().
			Foreground(fadeTo(theme.AccentHex, fade)).
			Render(fmt.Sprintf("🏆 %s — %s", a.Name, a.Message))
		lines = append(lines, unlock)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(box)
}
