package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bilingui/skillrings/internal/progression"
	"github.com/bilingui/skillrings/internal/rings"
	"github.com/bilingui/skillrings/internal/screen"
	"github.com/bilingui/skillrings/internal/stats"
	"github.com/bilingui/skillrings/internal/ui/components"
	"github.com/bilingui/skillrings/internal/ui/layout"
	"github.com/bilingui/skillrings/internal/ui/theme"
)

const (
	frameInterval = 50 * time.Millisecond

	// Entry animation: one ease-out sweep from 0 to 1, played on mount
	// only. Score changes after mount redraw at full sweep instantly.
	entryDuration = 1400 * time.Millisecond

	// Cross-fade of the center label on every selection transition.
	fadeDuration = 200 * time.Millisecond

	// Legend chip scale-up while selected.
	chipDuration = 250 * time.Millisecond
)

type frameMsg time.Time

// StatsChangedMsg replaces the snapshot shown by the dashboard. The
// entry animation is not replayed; rings jump to the new sweep.
type StatsChangedMsg struct {
	Stats stats.Stats
}

// AwardAppliedMsg carries an award receipt for the notifier toast.
type AwardAppliedMsg struct {
	Receipt progression.Receipt
}

// DashboardScreen renders the five concentric skill rings with legend,
// center label, XP bar, and award notifier.
type DashboardScreen struct {
	stats    stats.Stats
	selected int

	entryElapsed time.Duration
	fadeElapsed  time.Duration
	chipElapsed  time.Duration
	cursor       int

	notifier Notifier
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New creates the dashboard for a snapshot.
func New(st stats.Stats) *DashboardScreen {
	return &DashboardScreen{
		stats:       st,
		selected:    rings.NoSelection,
		fadeElapsed: fadeDuration,
		chipElapsed: chipDuration,
	}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return frameTick()
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		d.advance(frameInterval)
		return d, frameTick()

	case StatsChangedMsg:
		d.stats = msg.Stats
		return d, nil

	case AwardAppliedMsg:
		d.stats = msg.Receipt.After
		d.notifier.Show(msg.Receipt)
		return d, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "1", "2", "3", "4", "5":
			d.cursor = int(key[0] - '1')
			d.Select(d.cursor)
		case "left", "h":
			if d.cursor > 0 {
				d.cursor--
			}
		case "right", "l":
			if d.cursor < stats.SkillCount-1 {
				d.cursor++
			}
		case "enter", "space":
			d.Select(d.cursor)
		}
	}
	return d, nil
}

// advance moves every timeline forward by one frame.
func (d *DashboardScreen) advance(dt time.Duration) {
	if d.entryElapsed < entryDuration {
		d.entryElapsed += dt
	}
	if d.fadeElapsed < fadeDuration {
		d.fadeElapsed += dt
	}
	if d.chipElapsed < chipDuration {
		d.chipElapsed += dt
	}
	d.notifier.Tick(dt)
}

// Select toggles the selection for skill i: selecting the current
// selection clears it, selecting another switches directly. Every
// transition restarts the center label cross-fade and the chip scale
// animation.
func (d *DashboardScreen) Select(i int) {
	if i < 0 || i >= stats.SkillCount {
		return
	}
	if d.selected == i {
		d.selected = rings.NoSelection
	} else {
		d.selected = i
	}
	d.fadeElapsed = 0
	d.chipElapsed = 0
}

// Selected returns the selected ring index or rings.NoSelection.
func (d *DashboardScreen) Selected() int {
	return d.selected
}

// Progress returns the eased entry-animation value in [0, 1].
func (d *DashboardScreen) Progress() float64 {
	t := float64(d.entryElapsed) / float64(entryDuration)
	if t >= 1 {
		return 1
	}
	return easeOutCubic(t)
}

// CenterLabel returns the label and sublabel for the chart center:
// the aggregate level and tier with no selection, the selected skill's
// percentage and name otherwise.
func (d *DashboardScreen) CenterLabel() (label, sublabel string) {
	if d.selected == rings.NoSelection {
		return fmt.Sprintf("Level %d", d.stats.Level), progression.TierName(d.stats.Level)
	}
	sk := stats.Catalog()[d.selected]
	score := d.stats.Score(sk.Index)
	return fmt.Sprintf("%d%%", int(math.Round(score*100))), sk.Name
}

// fadeFactor is the center label cross-fade position in [0, 1].
func (d *DashboardScreen) fadeFactor() float64 {
	t := float64(d.fadeElapsed) / float64(fadeDuration)
	if t >= 1 {
		return 1
	}
	return t
}

// chipScale is the eased legend chip scale position in [0, 1].
func (d *DashboardScreen) chipScale() float64 {
	t := float64(d.chipElapsed) / float64(chipDuration)
	if t >= 1 {
		return 1
	}
	return easeOutBack(t)
}

func (d *DashboardScreen) View(width, height int) string {
	canvasSize := chartSize(width, height)
	canvas := renderChart(d.stats, d.Progress(), d.selected, canvasSize)

	panel := d.renderPanel(width - canvasSize - 6)
	top := lipgloss.JoinHorizontal(lipgloss.Center, canvas, "   ", panel)

	legend := d.renderLegend(width)

	sections := []string{top, "", legend}
	if toast := d.notifier.View(width); toast != "" {
		sections = append(sections, "", toast)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// KeyHints returns the key binding hints for the footer.
func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Skill"},
		{Key: "Enter", Description: "Select"},
		{Key: "1-5", Description: "Jump"},
		{Key: "Esc", Description: "Back"},
	}
}

// renderPanel renders the center label block and XP bar shown beside
// the rings.
func (d *DashboardScreen) renderPanel(width int) string {
	if width < 20 {
		width = 20
	}

	label, sublabel := d.CenterLabel()
	fade := d.fadeFactor()

	labelStyle := lipgloss.NewStyle().
		Foreground(fadeColor(fade)).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)
	subStyle := lipgloss.NewStyle().
		Foreground(fadeDimColor(fade)).
		Width(width).
		Align(lipgloss.Center)

	bar := components.NewXPBar("", d.stats.CurrentXP, d.stats.MaxXP, true, width)

	streak := lipgloss.NewStyle().
		Foreground(theme.Gold).
		Width(width).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("🔥 %d day streak · %s",
			d.stats.Streak, progression.StreakLevel(d.stats.Streak)))

	return strings.Join([]string{
		labelStyle.Render(label),
		subStyle.Render(sublabel),
		"",
		bar.View(),
		"",
		streak,
	}, "\n")
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// easeOutBack overshoots slightly before settling, for the chip pop.
func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}
