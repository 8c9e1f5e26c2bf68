package stats

import (
	"strings"
	"testing"
)

func TestSkillIndexString(t *testing.T) {
	tests := []struct {
		index SkillIndex
		want  string
	}{
		{Speaking, "Speaking"},
		{Reading, "Reading"},
		{Grammar, "Grammar"},
		{Listening, "Listening"},
		{Writing, "Writing"},
		{SkillIndex(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.index.String(); got != tt.want {
			t.Errorf("SkillIndex(%d).String() = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestScoresOrder(t *testing.T) {
	s := Stats{Speaking: 0.1, Reading: 0.2, Grammar: 0.3, Listening: 0.4, Writing: 0.5}

	got := s.Scores()
	want := [SkillCount]float64{0.1, 0.2, 0.3, 0.4, 0.5}
	if got != want {
		t.Errorf("Scores() = %v, want %v", got, want)
	}

	for i := 0; i < SkillCount; i++ {
		if s.Score(SkillIndex(i)) != want[i] {
			t.Errorf("Score(%d) = %v, want %v", i, s.Score(SkillIndex(i)), want[i])
		}
	}
}

func TestClamp(t *testing.T) {
	s := Stats{Speaking: -0.5, Reading: 1.5, Grammar: 0.6}.Clamp()

	if s.Speaking != 0 {
		t.Errorf("Speaking = %v, want 0", s.Speaking)
	}
	if s.Reading != 1 {
		t.Errorf("Reading = %v, want 1", s.Reading)
	}
	if s.Grammar != 0.6 {
		t.Errorf("Grammar = %v, want 0.6", s.Grammar)
	}
}

func TestCatalogOrder(t *testing.T) {
	cat := Catalog()
	wantNames := []string{"Speaking", "Reading", "Grammar", "Listening", "Writing"}

	for i, name := range wantNames {
		if cat[i].Name != name {
			t.Errorf("Catalog()[%d].Name = %q, want %q", i, cat[i].Name, name)
		}
		if cat[i].Index != SkillIndex(i) {
			t.Errorf("Catalog()[%d].Index = %d, want %d", i, cat[i].Index, i)
		}
		if cat[i].ColorStart == "" || cat[i].ColorEnd == "" {
			t.Errorf("Catalog()[%d] is missing gradient colors", i)
		}
	}
}

func TestSkillByName(t *testing.T) {
	sk, ok := SkillByName("Grammar")
	if !ok || sk.Index != Grammar {
		t.Errorf("SkillByName(Grammar) = %+v, %v", sk, ok)
	}

	if _, ok := SkillByName("Algebra"); ok {
		t.Error("SkillByName(Algebra) should not resolve")
	}
}

func TestSkillByName_FoldsCase(t *testing.T) {
	for _, name := range []string{"speaking", "READING", "gRaMmAr", "listening", "writing"} {
		sk, ok := SkillByName(name)
		if !ok {
			t.Errorf("SkillByName(%q) did not resolve", name)
			continue
		}
		if !strings.EqualFold(sk.Name, name) {
			t.Errorf("SkillByName(%q) = %q", name, sk.Name)
		}
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.Level != 1 || d.CurrentXP != 0 || d.MaxXP != 1000 {
		t.Errorf("Default() = %+v, want level 1, 0/1000 xp", d)
	}
}

func TestStoreReplace(t *testing.T) {
	store := NewStore(Default())

	next := Sample()
	store.Replace(next)

	if store.Current() != next {
		t.Errorf("Current() = %+v, want replaced snapshot", store.Current())
	}
}
