package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bilingui/skillrings/internal/progression"
	"github.com/bilingui/skillrings/internal/router"
	"github.com/bilingui/skillrings/internal/screen"
	"github.com/bilingui/skillrings/internal/screens/award"
	"github.com/bilingui/skillrings/internal/screens/dashboard"
	"github.com/bilingui/skillrings/internal/stats"
	"github.com/bilingui/skillrings/internal/ui/components"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

// Block-letter title shown on wide terminals.
const titleFull = ` ███████╗██╗  ██╗██╗██╗     ██╗     ██████╗ ██╗███╗   ██╗ ██████╗ ███████╗
 ██╔════╝██║ ██╔╝██║██║     ██║     ██╔══██╗██║████╗  ██║██╔════╝ ██╔════╝
 ███████╗█████╔╝ ██║██║     ██║     ██████╔╝██║██╔██╗ ██║██║  ███╗███████╗
 ╚════██║██╔═██╗ ██║██║     ██║     ██╔══██╗██║██║╚██╗██║██║   ██║╚════██║
 ███████║██║  ██╗██║███████╗███████╗██║  ██║██║██║ ╚████║╚██████╔╝███████║
 ╚══════╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚══════╝`

const titleCompact = "S · K · I · L · L · R · I · N · G · S"

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	store *stats.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen reading the canonical snapshot from store.
func New(store *stats.Store) *HomeScreen {
	h := &HomeScreen{store: store}

	items := []components.MenuItem{
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(h.store.Current())}
			}
		}},
		{Label: "AWARD XP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: award.New(h.store.Current())}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := width < 80
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		"",
		renderStatsBar(h.store.Current(), cw),
		"",
		h.menu.View(),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 78 {
		w = 78
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}

// renderStatsBar shows the level, tier, XP, and streak summary in a
// bordered box matching content width.
func renderStatsBar(st stats.Stats, cw int) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)
	tierStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	line := fmt.Sprintf("%s %s  %s  %s",
		levelStyle.Render(fmt.Sprintf("Lv %d", st.Level)),
		tierStyle.Render(progression.TierName(st.Level)),
		dimStyle.Render(fmt.Sprintf("%d/%d XP", st.CurrentXP, st.MaxXP)),
		streakStyle.Render(fmt.Sprintf("🔥 %d", st.Streak)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(line)
}
