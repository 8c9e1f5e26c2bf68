package progression

// TierName maps a level to the tier text shown under the aggregate
// level label.
func TierName(level int) string {
	switch {
	case level >= 35:
		return "Master"
	case level >= 20:
		return "Fluent"
	case level >= 10:
		return "Conversational"
	case level >= 5:
		return "Explorer"
	default:
		return "Beginner"
	}
}
