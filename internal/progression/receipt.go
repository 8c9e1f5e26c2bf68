package progression

import (
	"github.com/google/uuid"

	"github.com/bilingui/skillrings/internal/stats"
)

// Receipt records the outcome of a single award so the UI can announce
// it (XP toast, level-up banner, achievement unlocks).
type Receipt struct {
	ID           string
	Amount       int
	Before       stats.Stats
	After        stats.Stats
	LeveledUp    bool
	Achievements []Achievement

	// Multiplier is the streak bonus in force when the award landed.
	// It is informational: the engine applies the amount literally,
	// and whoever grants XP scales it beforehand.
	Multiplier float64
}

// Apply runs Award and wraps the result in a Receipt. Callers that
// only need the next snapshot can use Award directly.
func Apply(s stats.Stats, amount int) (Receipt, error) {
	after, err := Award(s, amount)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{
		ID:           uuid.New().String(),
		Amount:       amount,
		Before:       s,
		After:        after,
		LeveledUp:    LeveledUp(s, after),
		Achievements: NewlyUnlocked(s, after),
		Multiplier:   StreakMultiplier(s.Streak),
	}, nil
}
