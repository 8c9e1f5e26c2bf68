package progression

// Streak milestones follow the achievement ladder: 3, 7, 30, 100 days,
// then every 30 days after that.
var streakMilestones = []int{3, 7, 30, 100}

// NextStreakMilestone returns the next streak milestone above the
// current streak length.
func NextStreakMilestone(current int) int {
	for _, m := range streakMilestones {
		if m > current {
			return m
		}
	}
	// Beyond 100, milestone every 30 days.
	return ((current-100)/30+1)*30 + 100
}

// StreakMultiplier returns the XP multiplier earned by keeping a
// streak alive.
func StreakMultiplier(streak int) float64 {
	switch {
	case streak >= 30:
		return 2.0
	case streak >= 14:
		return 1.5
	case streak >= 7:
		return 1.3
	case streak >= 3:
		return 1.1
	default:
		return 1.0
	}
}

// StreakLevel names the streak band shown next to the flame counter.
func StreakLevel(streak int) string {
	switch {
	case streak >= 100:
		return "Century Scholar"
	case streak >= 30:
		return "Monthly Master"
	case streak >= 7:
		return "Weekly Warrior"
	case streak >= 3:
		return "Getting Started"
	default:
		return "New"
	}
}
