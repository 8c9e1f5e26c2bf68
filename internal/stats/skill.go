package stats

import "strings"

// Skill is the per-skill display record built fresh on every render
// pass. ColorStart and ColorEnd are hex strings; the ring renderer
// interpolates between them along the arc.
type Skill struct {
	Index      SkillIndex
	Name       string
	Icon       string
	ColorStart string
	ColorEnd   string
}

var catalog = [SkillCount]Skill{
	{Speaking, "Speaking", "🗣", "#F97316", "#FBBF24"},
	{Reading, "Reading", "📖", "#8B5CF6", "#EC4899"},
	{Grammar, "Grammar", "✏", "#14B8A6", "#22D3EE"},
	{Listening, "Listening", "🎧", "#22C55E", "#84CC16"},
	{Writing, "Writing", "✍", "#3B82F6", "#6366F1"},
}

// Catalog returns the five skill display records in ring order
// (index 0 = Speaking = outermost ring).
func Catalog() [SkillCount]Skill {
	return catalog
}

// SkillByIndex returns the display record for one skill.
func SkillByIndex(i SkillIndex) Skill {
	if !i.Valid() {
		return Skill{}
	}
	return catalog[i]
}

// SkillByName finds a skill by its display name, ignoring case so
// command-line input like "speaking" resolves. The second return is
// false when the name is unknown.
func SkillByName(name string) (Skill, bool) {
	for _, sk := range catalog {
		if strings.EqualFold(sk.Name, name) {
			return sk, true
		}
	}
	return Skill{}, false
}
