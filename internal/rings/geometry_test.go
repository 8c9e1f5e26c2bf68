package rings

import (
	"math"
	"testing"
)

// Ring radius must strictly decrease with skill index for any canvas
// size: Speaking outermost, Writing innermost.
func TestRingRadiusOrdering(t *testing.T) {
	for _, size := range []float64{1, 80, 200, 340.5, 1000} {
		l := NewLayout(size)
		for i := 1; i < 5; i++ {
			if l.RingRadius(i) >= l.RingRadius(i-1) {
				t.Errorf("size %v: ring %d radius %v >= ring %d radius %v",
					size, i, l.RingRadius(i), i-1, l.RingRadius(i-1))
			}
		}
	}
}

func TestLayoutGeometry(t *testing.T) {
	l := NewLayout(200)

	if l.CenterX != 100 || l.CenterY != 100 {
		t.Errorf("center = (%v, %v), want (100, 100)", l.CenterX, l.CenterY)
	}
	if l.MaxRadius != 100 {
		t.Errorf("MaxRadius = %v, want 100", l.MaxRadius)
	}
	if l.OuterStart != 94 {
		t.Errorf("OuterStart = %v, want 94 (maxRadius - 6)", l.OuterStart)
	}
	if got := l.RingRadius(0); got != 94 {
		t.Errorf("RingRadius(0) = %v, want 94", got)
	}
	if got := l.RingRadius(1); got != 79 {
		t.Errorf("RingRadius(1) = %v, want 79 (94 - (10+5))", got)
	}
}

// For all scores and progress values in [0, 1] the sweep stays within
// [0, 2π].
func TestSweepAngleBounds(t *testing.T) {
	for s := 0.0; s <= 1.0; s += 0.05 {
		for p := 0.0; p <= 1.0; p += 0.05 {
			sweep := SweepAngle(s, p)
			if sweep < 0 || sweep > 2*math.Pi+1e-9 {
				t.Fatalf("SweepAngle(%v, %v) = %v out of [0, 2π]", s, p, sweep)
			}
		}
	}
}

func TestSweepAngleProportional(t *testing.T) {
	got := SweepAngle(0.5, 1.0)
	if math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("SweepAngle(0.5, 1.0) = %v, want π", got)
	}

	got = SweepAngle(1.0, 0.25)
	if math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("SweepAngle(1.0, 0.25) = %v, want π/2", got)
	}
}

func TestStrokeWidth(t *testing.T) {
	if got := StrokeWidth(false); got != 10 {
		t.Errorf("StrokeWidth(false) = %v, want 10", got)
	}
	if got := StrokeWidth(true); got != 13 {
		t.Errorf("StrokeWidth(true) = %v, want 13", got)
	}
}

func TestPointAt(t *testing.T) {
	l := NewLayout(100)

	// -π/2 is 12 o'clock in screen coordinates.
	x, y := l.PointAt(StartAngle, 40)
	if math.Abs(x-50) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("PointAt(-π/2, 40) = (%v, %v), want (50, 10)", x, y)
	}

	// A quarter turn clockwise lands at 3 o'clock.
	x, y = l.PointAt(StartAngle+math.Pi/2, 40)
	if math.Abs(x-90) > 1e-9 || math.Abs(y-50) > 1e-9 {
		t.Errorf("PointAt(0, 40) = (%v, %v), want (90, 50)", x, y)
	}
}
