package progression

import (
	"github.com/bilingui/skillrings/internal/stats"
)

// The XP cap grows geometrically by 6/5 (1.2x) on every level-up, so
// difficulty ramps without a lookup table. Integer math keeps the
// floor exact.
const (
	capGrowthNum = 6
	capGrowthDen = 5
)

// Award applies an experience award to a snapshot and returns the next
// snapshot. The function is pure: it reads its input, returns a new
// value, and touches no shared state, so it is safe to call from the
// UI loop.
//
// At most one level-up happens per award. Awards are assumed small
// relative to the cap; an award spanning more than one full level
// carries the excess into the next level without cascading.
func Award(s stats.Stats, amount int) (stats.Stats, error) {
	if amount <= 0 {
		return stats.Stats{}, &ErrInvalidArgument{Amount: amount}
	}
	if s.MaxXP <= 0 {
		return stats.Stats{}, &ErrInvalidState{MaxXP: s.MaxXP}
	}

	next := s
	next.CurrentXP += amount
	if next.CurrentXP >= next.MaxXP {
		next.CurrentXP -= next.MaxXP
		next.Level++
		next.MaxXP = next.MaxXP * capGrowthNum / capGrowthDen
	}
	return next, nil
}

// LeveledUp reports whether an award moved the learner to a new level.
func LeveledUp(before, after stats.Stats) bool {
	return after.Level > before.Level
}
