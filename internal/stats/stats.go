package stats

// SkillIndex identifies one of the five tracked skills. The order is
// fixed: it drives ring radius assignment (Speaking is the outermost
// ring) and legend layout.
type SkillIndex int

const (
	Speaking SkillIndex = iota
	Reading
	Grammar
	Listening
	Writing

	SkillCount = 5
)

// String returns the display name for the skill.
func (i SkillIndex) String() string {
	switch i {
	case Speaking:
		return "Speaking"
	case Reading:
		return "Reading"
	case Grammar:
		return "Grammar"
	case Listening:
		return "Listening"
	case Writing:
		return "Writing"
	default:
		return "Unknown"
	}
}

// Valid reports whether i names one of the five skills.
func (i SkillIndex) Valid() bool {
	return i >= 0 && i < SkillCount
}

// Stats is the learner snapshot shared by the progression engine and
// the ring visualization. It is a plain value: mutations replace the
// whole snapshot, there is no identity beyond equality.
type Stats struct {
	CurrentXP int
	MaxXP     int
	Level     int
	Streak    int

	// Mastery fraction per skill, each in [0, 1].
	Speaking  float64
	Reading   float64
	Grammar   float64
	Listening float64
	Writing   float64
}

// Score returns the mastery fraction for the given skill.
func (s Stats) Score(i SkillIndex) float64 {
	switch i {
	case Speaking:
		return s.Speaking
	case Reading:
		return s.Reading
	case Grammar:
		return s.Grammar
	case Listening:
		return s.Listening
	case Writing:
		return s.Writing
	default:
		return 0
	}
}

// Scores returns all five mastery fractions in skill order.
func (s Stats) Scores() [SkillCount]float64 {
	return [SkillCount]float64{s.Speaking, s.Reading, s.Grammar, s.Listening, s.Writing}
}

// Default returns the snapshot a brand-new learner starts with.
func Default() Stats {
	return Stats{
		CurrentXP: 0,
		MaxXP:     1000,
		Level:     1,
		Streak:    0,
	}
}

// Sample returns the demo snapshot used when no profile is supplied.
func Sample() Stats {
	return Stats{
		CurrentXP: 450,
		MaxXP:     1000,
		Level:     7,
		Streak:    12,
		Speaking:  0.7,
		Reading:   0.85,
		Grammar:   0.6,
		Listening: 0.75,
		Writing:   0.5,
	}
}

// Clamp returns a copy with every skill score forced into [0, 1].
// The renderer does not validate scores, so anything that accepts
// external input should clamp before handing a snapshot downstream.
func (s Stats) Clamp() Stats {
	s.Speaking = clamp01(s.Speaking)
	s.Reading = clamp01(s.Reading)
	s.Grammar = clamp01(s.Grammar)
	s.Listening = clamp01(s.Listening)
	s.Writing = clamp01(s.Writing)
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
