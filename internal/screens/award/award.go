package award

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bilingui/skillrings/internal/progression"
	"github.com/bilingui/skillrings/internal/router"
	"github.com/bilingui/skillrings/internal/screen"
	"github.com/bilingui/skillrings/internal/screens/dashboard"
	"github.com/bilingui/skillrings/internal/stats"
	"github.com/bilingui/skillrings/internal/ui/components"
	"github.com/bilingui/skillrings/internal/ui/layout"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

// AwardScreen lets the learner grant themselves experience points and
// shows the resulting receipt. The snapshot flows back to the rest of
// the app through an AwardAppliedMsg.
type AwardScreen struct {
	stats   stats.Stats
	input   components.TextInput
	receipt *progression.Receipt
	errText string
}

var _ screen.Screen = (*AwardScreen)(nil)

// New creates an AwardScreen for the given snapshot.
func New(st stats.Stats) *AwardScreen {
	return &AwardScreen{
		stats: st,
		input: components.NewTextInput("XP amount", true, 6),
	}
}

func (a *AwardScreen) Title() string {
	return "Award XP"
}

func (a *AwardScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *AwardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			return a, a.apply()
		case "q":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// apply runs the progression engine on the entered amount.
func (a *AwardScreen) apply() tea.Cmd {
	amount, err := a.input.NumericValue()
	if err != nil {
		a.input.Submit(false)
		a.errText = "enter a whole number of XP"
		return nil
	}

	receipt, err := progression.Apply(a.stats, amount)
	if err != nil {
		a.input.Submit(false)
		a.errText = err.Error()
		return nil
	}

	a.stats = receipt.After
	a.receipt = &receipt
	a.errText = ""
	a.input.Submit(true)
	a.input.Reset()

	// Propagate the new snapshot to the dashboard underneath.
	return func() tea.Msg {
		return dashboard.AwardAppliedMsg{Receipt: receipt}
	}
}

// Stats returns the current snapshot, including applied awards.
func (a *AwardScreen) Stats() stats.Stats {
	return a.stats
}

func (a *AwardScreen) View(width, height int) string {
	var sections []string

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("How much XP did you earn?")
	sections = append(sections, prompt, "", a.input.View(), "")

	bar := components.NewXPBar("Progress", a.stats.CurrentXP, a.stats.MaxXP, true, min(width-8, 60))
	sections = append(sections, bar.View())

	if a.errText != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(a.errText))
	}

	if a.receipt != nil {
		sections = append(sections, "", a.renderReceipt())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints returns the key binding hints for the footer.
func (a *AwardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Award"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AwardScreen) renderReceipt() string {
	r := a.receipt
	var lines []string

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Render(fmt.Sprintf("+%d XP awarded", r.Amount)))

	if r.Multiplier > 1 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("🔥 ×%.1f streak bonus active", r.Multiplier)))
	}

	if r.LeveledUp {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Gold).
			Bold(true).
			Render(fmt.Sprintf("Level %d → %d  (next cap %d XP)",
				r.Before.Level, r.After.Level, r.After.MaxXP)))
	}
	for _, ach := range r.Achievements {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("🏆 %s", ach.Name)))
	}

	lines = append(lines, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("receipt %s", r.ID)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}
