package progression

import "github.com/bilingui/skillrings/internal/stats"

// Rarity grades how hard an achievement is to earn.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "common"
	case Rare:
		return "rare"
	case Epic:
		return "epic"
	case Legendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Achievement is one entry in the static catalog. Criteria are
// evaluated against a snapshot; unlock state is not stored here.
// Callers diff Unlocked() before and after an award.
type Achievement struct {
	ID       string
	Name     string
	Message  string
	Rarity   Rarity
	XPReward int
	criteria func(stats.Stats) bool
}

var achievementCatalog = []Achievement{
	{
		ID: "first_steps", Name: "First Steps", Rarity: Common, XPReward: 50,
		Message:  "Your first level-up!",
		criteria: func(s stats.Stats) bool { return s.Level >= 2 },
	},
	{
		ID: "streak_3", Name: "Getting Started", Rarity: Common, XPReward: 100,
		Message:  "You're building momentum!",
		criteria: func(s stats.Stats) bool { return s.Streak >= 3 },
	},
	{
		ID: "streak_7", Name: "Weekly Warrior", Rarity: Rare, XPReward: 250,
		Message:  "One week of dedication!",
		criteria: func(s stats.Stats) bool { return s.Streak >= 7 },
	},
	{
		ID: "streak_30", Name: "Monthly Master", Rarity: Epic, XPReward: 1000,
		Message:  "A full month of learning!",
		criteria: func(s stats.Stats) bool { return s.Streak >= 30 },
	},
	{
		ID: "streak_100", Name: "Century Scholar", Rarity: Legendary, XPReward: 5000,
		Message:  "One hundred days strong!",
		criteria: func(s stats.Stats) bool { return s.Streak >= 100 },
	},
	{
		ID: "level_10", Name: "Level Up", Rarity: Rare, XPReward: 400,
		Message:  "You've leveled up significantly!",
		criteria: func(s stats.Stats) bool { return s.Level >= 10 },
	},
	{
		ID: "well_rounded", Name: "Well Rounded", Rarity: Epic, XPReward: 750,
		Message: "Every skill above halfway!",
		criteria: func(s stats.Stats) bool {
			for _, score := range s.Scores() {
				if score < 0.5 {
					return false
				}
			}
			return true
		},
	},
}

// Catalog returns the full achievement catalog.
func Catalog() []Achievement {
	return achievementCatalog
}

// Unlocked returns the achievements whose criteria the snapshot meets.
func Unlocked(s stats.Stats) []Achievement {
	var out []Achievement
	for _, a := range achievementCatalog {
		if a.criteria(s) {
			out = append(out, a)
		}
	}
	return out
}

// NewlyUnlocked returns achievements met by after but not by before.
func NewlyUnlocked(before, after stats.Stats) []Achievement {
	var out []Achievement
	for _, a := range achievementCatalog {
		if a.criteria(after) && !a.criteria(before) {
			out = append(out, a)
		}
	}
	return out
}
