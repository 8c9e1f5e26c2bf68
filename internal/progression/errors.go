package progression

import "fmt"

// ErrInvalidArgument indicates the caller passed a non-positive award
// amount. The engine never clamps; a bad amount is a contract violation.
type ErrInvalidArgument struct {
	Amount int
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("award amount must be positive, got %d", e.Amount)
}

// ErrInvalidState indicates the incoming snapshot violates the
// progression invariant (a zero or negative XP cap).
type ErrInvalidState struct {
	MaxXP int
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("xp cap must be positive, got %d", e.MaxXP)
}
