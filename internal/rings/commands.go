package rings

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/bilingui/skillrings/internal/stats"
)

// NoSelection marks the absence of a selected ring.
const NoSelection = -1

// Command is one drawing primitive in a render pass. Commands are
// emitted in paint order: later commands draw over earlier ones.
type Command interface {
	command()
}

// Arc is a circular arc stroked along a centerline radius. Sweep runs
// clockwise from Start (screen convention, -π/2 is 12 o'clock).
type Arc struct {
	CX, CY  float64
	Radius  float64
	Start   float64
	Sweep   float64
	Width   float64
	Color   colorful.Color
	Opacity float64
}

// Dot is a filled circle, used for rounded end caps and the sweep's
// terminal marker.
type Dot struct {
	CX, CY  float64
	Radius  float64
	Color   colorful.Color
	Opacity float64
}

func (Arc) command() {}
func (Dot) command() {}

// Render produces the drawing commands for one frame of the radial
// chart: five concentric skill rings, outermost first, each with a
// full-circle track, an optional selection glow, a gradient sweep of
// discrete sub-arcs, rounded end caps, and a terminal dot.
//
// progress is the entry-animation value in [0, 1]; selected is a ring
// index or NoSelection. Scores are not validated: malformed input
// degrades visually but never fails.
func Render(st stats.Stats, progress float64, selected int, size float64) []Command {
	layout := NewLayout(size)
	catalog := stats.Catalog()

	cmds := make([]Command, 0, stats.SkillCount*(SegmentCount+5))

	// Tracks first so every sweep paints over its own ring's track.
	for i, sk := range catalog {
		cmds = append(cmds, Arc{
			CX: layout.CenterX, CY: layout.CenterY,
			Radius:  layout.RingRadius(i),
			Start:   0,
			Sweep:   2 * math.Pi,
			Width:   RingWidth,
			Color:   mustHex(sk.ColorEnd),
			Opacity: TrackOpacity,
		})
	}

	for i, sk := range catalog {
		cmds = append(cmds, renderRing(layout, i, sk, st.Score(sk.Index), progress, i == selected)...)
	}
	return cmds
}

// renderRing emits the commands for a single ring's filled portion.
func renderRing(layout Layout, index int, sk stats.Skill, score, progress float64, selected bool) []Command {
	sweep := SweepAngle(score, progress)
	if sweep <= 0 {
		return nil
	}

	width := StrokeWidth(selected)
	radius := layout.RingRadius(index)
	var cmds []Command

	// Soft glow beneath the selected ring once the entry animation has
	// finished.
	if selected && progress >= 1.0 {
		cmds = append(cmds, Arc{
			CX: layout.CenterX, CY: layout.CenterY,
			Radius:  radius,
			Start:   StartAngle,
			Sweep:   sweep,
			Width:   width + GlowWidthBoost,
			Color:   mustHex(sk.ColorStart),
			Opacity: GlowOpacity,
		})
	}

	// The arc is a chain of sub-arcs so each can carry its own
	// interpolated color; a single stroke cannot express the gradient.
	for s := 0; s < SegmentCount; s++ {
		t := float64(s) / float64(SegmentCount-1)
		cmds = append(cmds, Arc{
			CX: layout.CenterX, CY: layout.CenterY,
			Radius:  radius,
			Start:   StartAngle + sweep*float64(s)/float64(SegmentCount),
			Sweep:   sweep / float64(SegmentCount),
			Width:   width,
			Color:   Lerp(sk.ColorStart, sk.ColorEnd, t),
			Opacity: 1,
		})
	}

	// Rounded caps close the segment seams at both ends.
	startX, startY := layout.PointAt(StartAngle, radius)
	endX, endY := layout.PointAt(StartAngle+sweep, radius)
	cmds = append(cmds,
		Dot{CX: startX, CY: startY, Radius: width / 2, Color: mustHex(sk.ColorStart), Opacity: 1},
		Dot{CX: endX, CY: endY, Radius: width / 2, Color: mustHex(sk.ColorEnd), Opacity: 1},
	)

	// Terminal marker on top of the end cap.
	dotRadius := DotRadius
	if selected {
		dotRadius = DotRadiusSelected
	}
	cmds = append(cmds, Dot{CX: endX, CY: endY, Radius: dotRadius, Color: mustHex(sk.ColorEnd), Opacity: 1})

	return cmds
}
