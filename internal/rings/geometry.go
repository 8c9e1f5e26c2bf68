package rings

import "math"

// Geometry constants for the radial chart. All distances are in canvas
// pixels on a square canvas of side Size.
const (
	RingWidth  = 10.0
	RingGap    = 5.0
	OuterInset = 6.0

	// Extra stroke width applied to the selected ring.
	SelectedWidthBoost = 3.0

	// Extra width of the soft glow arc under a selected ring.
	GlowWidthBoost = 8.0

	// Terminal dot radius at the sweep's end.
	DotRadius         = 3.0
	DotRadiusSelected = 4.0

	// Opacity of the unfilled full-circle track.
	TrackOpacity = 0.15

	// Opacity of the selection glow.
	GlowOpacity = 0.2

	// Number of gradient sub-arcs per ring sweep.
	SegmentCount = 36

	// Sweeps start at 12 o'clock and run clockwise.
	StartAngle = -math.Pi / 2
)

// Layout fixes the chart geometry for one canvas size.
type Layout struct {
	Size       float64
	CenterX    float64
	CenterY    float64
	MaxRadius  float64
	OuterStart float64
}

// NewLayout computes the layout for a square canvas of side size.
func NewLayout(size float64) Layout {
	return Layout{
		Size:       size,
		CenterX:    size / 2,
		CenterY:    size / 2,
		MaxRadius:  size / 2,
		OuterStart: size/2 - OuterInset,
	}
}

// RingRadius returns the centerline radius of ring i. Ring 0 is the
// outermost; radius strictly decreases with i.
func (l Layout) RingRadius(i int) float64 {
	return l.OuterStart - float64(i)*(RingWidth+RingGap)
}

// SweepAngle returns the angular extent of a ring's filled arc for a
// mastery score and an animation progress value. No clamping happens
// here: out-of-range inputs yield over- or under-swept arcs, never a
// failure.
func SweepAngle(score, progress float64) float64 {
	return 2 * math.Pi * score * progress
}

// StrokeWidth returns the effective stroke width of a ring.
func StrokeWidth(selected bool) float64 {
	if selected {
		return RingWidth + SelectedWidthBoost
	}
	return RingWidth
}

// PointAt returns the canvas position at the given angle and radius.
// Angles follow screen convention: y grows downward, so increasing
// angles run clockwise and -π/2 is 12 o'clock.
func (l Layout) PointAt(angle, radius float64) (x, y float64) {
	return l.CenterX + radius*math.Cos(angle), l.CenterY + radius*math.Sin(angle)
}
