package game

import (
	"math"
	"testing"
)

func slide(steps ...*SubEvent) *Note {
	return &Note{
		Unit:     Unit{Time: 1, Lane: 0, Length: 4},
		Category: Slide,
		Duration: steps[len(steps)-1].Time - 1,
		Steps:    steps,
	}
}

func checkpoint(role Role, time float64, lane, length int) *SubEvent {
	return &SubEvent{Unit: Unit{Time: time, Lane: lane, Length: length}, Role: role}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestShapeMidpoint(t *testing.T) {
	// (t0, c0, w0) = (1, 2, 4) and (t1, c1, w1) = (2, 10, 2)
	n := slide(checkpoint(End, 2, 9, 2))
	center, width := n.Shape(1.5)
	if !near(center, 6) || !near(width, 3) {
		t.Log("center", center, "width", width)
		t.Fail()
	}
}

func TestShapeCurve(t *testing.T) {
	end := checkpoint(End, 2, 12, 4)
	end.Curve = []CurvePoint{{0, 0.125}, {0.5, 0.25}, {1, 0.875}}
	n := slide(end)

	var shapeTests = map[float64]float64{
		1.0:  2,
		1.25: 3,
		1.5:  4,
		1.75: 9,
	}
	for now, expected := range shapeTests {
		center, _ := n.Shape(now)
		if !near(center, expected) {
			t.Log("now     ", now)
			t.Log("center  ", center)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestSpanEnds(t *testing.T) {
	n := slide(
		checkpoint(Control, 1.2, 15, 1),
		checkpoint(Step, 1.5, 4, 4),
		checkpoint(End, 2, 8, 6),
	)

	if l, r := n.Span(0.5); l != 0 || r != 4 {
		t.Errorf("before head: got [%d, %d)", l, r)
	}
	if l, r := n.Span(2.5); l != 8 || r != 14 {
		t.Errorf("after end: got [%d, %d)", l, r)
	}
	// Exactly on a checkpoint the segment ending there is used
	if l, r := n.Span(1.5); l != 4 || r != 8 {
		t.Errorf("on step: got [%d, %d)", l, r)
	}
}

func TestSpanFractional(t *testing.T) {
	// Center 2.5 width 3 -> [1, 4)
	n := slide(checkpoint(End, 2, 1, 3))
	n.Lane, n.Length = 1, 3
	if l, r := n.Span(1.5); l != 1 || r != 4 {
		t.Errorf("got [%d, %d)", l, r)
	}
}

func TestSpanNeverEmpty(t *testing.T) {
	n := slide(checkpoint(End, 2, 15, 0))
	n.Lane, n.Length = 15, 0
	l, r := n.Span(1.5)
	if r-l < 1 {
		t.Errorf("empty span [%d, %d)", l, r)
	}

	n = slide(checkpoint(End, 2, 20, 4))
	l, r = n.Span(3)
	if l < 0 || r > LaneCount || r-l < 1 {
		t.Errorf("span left the field [%d, %d)", l, r)
	}
}

func TestSpanNonSlide(t *testing.T) {
	n := &Note{Unit: Unit{Time: 1, Lane: 3, Length: 5}, Category: Hold}
	if l, r := n.Span(10); l != 3 || r != 8 {
		t.Errorf("got [%d, %d)", l, r)
	}
}
