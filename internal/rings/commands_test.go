package rings

import (
	"math"
	"testing"

	"github.com/bilingui/skillrings/internal/stats"
)

func sampleStats() stats.Stats {
	return stats.Stats{
		Level: 7, MaxXP: 1000,
		Speaking: 0.7, Reading: 0.85, Grammar: 0.6, Listening: 0.75, Writing: 0.5,
	}
}

// arcsAtRadius filters arc commands stroked on one ring's centerline.
func arcsAtRadius(cmds []Command, radius float64) []Arc {
	var out []Arc
	for _, c := range cmds {
		if a, ok := c.(Arc); ok && math.Abs(a.Radius-radius) < 1e-9 {
			out = append(out, a)
		}
	}
	return out
}

func dotsIn(cmds []Command) []Dot {
	var out []Dot
	for _, c := range cmds {
		if d, ok := c.(Dot); ok {
			out = append(out, d)
		}
	}
	return out
}

func TestRender_TracksFirst(t *testing.T) {
	cmds := Render(sampleStats(), 1.0, NoSelection, 200)
	if len(cmds) < stats.SkillCount {
		t.Fatalf("expected at least %d commands, got %d", stats.SkillCount, len(cmds))
	}

	l := NewLayout(200)
	for i := 0; i < stats.SkillCount; i++ {
		track, ok := cmds[i].(Arc)
		if !ok {
			t.Fatalf("command %d is %T, want a track Arc", i, cmds[i])
		}
		if track.Opacity != TrackOpacity {
			t.Errorf("track %d opacity = %v, want %v", i, track.Opacity, TrackOpacity)
		}
		if track.Sweep < 2*math.Pi-1e-9 {
			t.Errorf("track %d is not a full circle: sweep %v", i, track.Sweep)
		}
		if math.Abs(track.Radius-l.RingRadius(i)) > 1e-9 {
			t.Errorf("track %d radius = %v, want %v", i, track.Radius, l.RingRadius(i))
		}
	}
}

func TestRender_SegmentGradient(t *testing.T) {
	st := sampleStats()
	cmds := Render(st, 1.0, NoSelection, 200)
	l := NewLayout(200)
	sk := stats.Catalog()[stats.Grammar]

	arcs := arcsAtRadius(cmds, l.RingRadius(int(stats.Grammar)))
	// Track + 36 gradient sub-arcs.
	if len(arcs) != SegmentCount+1 {
		t.Fatalf("grammar ring has %d arcs, want %d", len(arcs), SegmentCount+1)
	}
	segments := arcs[1:]

	if segments[0].Color != Lerp(sk.ColorStart, sk.ColorEnd, 0) {
		t.Errorf("first segment color = %v, want colorStart", segments[0].Color)
	}
	last := segments[len(segments)-1]
	if last.Color != Lerp(sk.ColorStart, sk.ColorEnd, 1) {
		t.Errorf("last segment color = %v, want colorEnd", last.Color)
	}

	// Segments tile the sweep contiguously from 12 o'clock.
	wantSweep := SweepAngle(st.Grammar, 1.0)
	if math.Abs(segments[0].Start-StartAngle) > 1e-9 {
		t.Errorf("first segment starts at %v, want %v", segments[0].Start, StartAngle)
	}
	end := segments[len(segments)-1].Start + segments[len(segments)-1].Sweep
	if math.Abs(end-(StartAngle+wantSweep)) > 1e-9 {
		t.Errorf("segments end at %v, want %v", end, StartAngle+wantSweep)
	}
	for i := 1; i < len(segments); i++ {
		prevEnd := segments[i-1].Start + segments[i-1].Sweep
		if math.Abs(segments[i].Start-prevEnd) > 1e-9 {
			t.Errorf("segment %d does not abut segment %d", i, i-1)
		}
	}
}

func TestRender_ZeroScoresDrawOnlyTracks(t *testing.T) {
	st := stats.Stats{Level: 1, MaxXP: 1000}

	cmds := Render(st, 1.0, NoSelection, 200)
	if len(cmds) != stats.SkillCount {
		t.Fatalf("expected only %d tracks, got %d commands", stats.SkillCount, len(cmds))
	}
}

func TestRender_SelectionBoostsStroke(t *testing.T) {
	st := sampleStats()
	l := NewLayout(200)

	cmds := Render(st, 1.0, int(stats.Reading), 200)
	arcs := arcsAtRadius(cmds, l.RingRadius(int(stats.Reading)))

	// Track, glow, then 36 segments.
	if len(arcs) != SegmentCount+2 {
		t.Fatalf("selected ring has %d arcs, want %d", len(arcs), SegmentCount+2)
	}

	glow := arcs[1]
	if glow.Width != RingWidth+SelectedWidthBoost+GlowWidthBoost {
		t.Errorf("glow width = %v, want %v", glow.Width, RingWidth+SelectedWidthBoost+GlowWidthBoost)
	}
	if glow.Opacity != GlowOpacity {
		t.Errorf("glow opacity = %v, want %v", glow.Opacity, GlowOpacity)
	}

	for i, seg := range arcs[2:] {
		if seg.Width != RingWidth+SelectedWidthBoost {
			t.Errorf("selected segment %d width = %v, want %v", i, seg.Width, RingWidth+SelectedWidthBoost)
		}
	}

	// Unselected rings keep the base stroke.
	for _, seg := range arcsAtRadius(cmds, l.RingRadius(int(stats.Writing)))[1:] {
		if seg.Width != RingWidth {
			t.Errorf("unselected segment width = %v, want %v", seg.Width, RingWidth)
		}
	}
}

func TestRender_GlowRequiresFullProgress(t *testing.T) {
	st := sampleStats()
	l := NewLayout(200)

	cmds := Render(st, 0.5, int(stats.Reading), 200)
	arcs := arcsAtRadius(cmds, l.RingRadius(int(stats.Reading)))
	if len(arcs) != SegmentCount+1 {
		t.Errorf("mid-animation selected ring has %d arcs, want %d (no glow)", len(arcs), SegmentCount+1)
	}
}

func TestRender_TerminalDotRadius(t *testing.T) {
	st := sampleStats()

	unselected := dotsIn(Render(st, 1.0, NoSelection, 200))
	// Per ring: start cap, end cap, terminal dot.
	if len(unselected) != stats.SkillCount*3 {
		t.Fatalf("got %d dots, want %d", len(unselected), stats.SkillCount*3)
	}
	for i := 0; i < stats.SkillCount; i++ {
		terminal := unselected[i*3+2]
		if terminal.Radius != DotRadius {
			t.Errorf("ring %d terminal dot radius = %v, want %v", i, terminal.Radius, DotRadius)
		}
	}

	selected := dotsIn(Render(st, 1.0, int(stats.Speaking), 200))
	if selected[2].Radius != DotRadiusSelected {
		t.Errorf("selected terminal dot radius = %v, want %v", selected[2].Radius, DotRadiusSelected)
	}
}

func TestRender_CapPositions(t *testing.T) {
	st := stats.Stats{MaxXP: 1000, Level: 1, Speaking: 0.25}
	l := NewLayout(200)

	dots := dotsIn(Render(st, 1.0, NoSelection, 200))
	if len(dots) != 3 {
		t.Fatalf("got %d dots, want 3", len(dots))
	}

	startX, startY := l.PointAt(StartAngle, l.RingRadius(0))
	if math.Abs(dots[0].CX-startX) > 1e-9 || math.Abs(dots[0].CY-startY) > 1e-9 {
		t.Errorf("start cap at (%v, %v), want (%v, %v)", dots[0].CX, dots[0].CY, startX, startY)
	}

	endX, endY := l.PointAt(StartAngle+SweepAngle(0.25, 1.0), l.RingRadius(0))
	if math.Abs(dots[1].CX-endX) > 1e-9 || math.Abs(dots[1].CY-endY) > 1e-9 {
		t.Errorf("end cap at (%v, %v), want (%v, %v)", dots[1].CX, dots[1].CY, endX, endY)
	}
}

func TestLerpClamps(t *testing.T) {
	start, end := "#000000", "#FFFFFF"

	if Lerp(start, end, -1) != Lerp(start, end, 0) {
		t.Error("Lerp should clamp t below 0")
	}
	if Lerp(start, end, 2) != Lerp(start, end, 1) {
		t.Error("Lerp should clamp t above 1")
	}
}
