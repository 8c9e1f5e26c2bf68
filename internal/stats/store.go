package stats

// Store holds the canonical snapshot for the running session. Screens
// read it when they mount; awards replace it wholesale, so readers see
// either the pre-award or the post-award snapshot, never a partial
// update.
type Store struct {
	current Stats
}

// NewStore creates a store seeded with the given snapshot.
func NewStore(s Stats) *Store {
	return &Store{current: s}
}

// Current returns the snapshot.
func (s *Store) Current() Stats {
	return s.current
}

// Replace swaps in a new snapshot.
func (s *Store) Replace(next Stats) {
	s.current = next
}
