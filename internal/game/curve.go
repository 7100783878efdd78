package game

import "math"

// CurvePoint shapes a slide segment. Offset is seconds since the segment's
// first checkpoint, Center is the lane position normalized to 0..1.
type CurvePoint struct {
	Offset float64
	Center float64
}

func Lerp(t, a, b float64) float64 {
	return a + (b-a)*t
}

// Shape returns the center lane position and width a slide expects to be
// held at, at the given time.
func (n *Note) Shape(now float64) (float64, float64) {
	last, ref := &n.Unit, &n.Unit
	var refStep *SubEvent
	for _, s := range n.Steps {
		if s.Role == Control || s.Role == Injection {
			continue
		}
		if now <= s.Time {
			ref, refStep = &s.Unit, s
			break
		}
		last, ref, refStep = &s.Unit, &s.Unit, s
	}

	switch {
	case last == ref:
		// Past the final checkpoint, or no checkpoints at all
		return last.Center(), float64(last.Length)
	case now < n.Time:
		return n.Center(), float64(n.Length)
	}

	block := ref.Time - last.Time
	timeInBlock := now - last.Time
	progress := 1.0
	if block > 0 {
		progress = timeInBlock / block
	}

	width := Lerp(progress, float64(last.Length), float64(ref.Length))
	if len(refStep.Curve) == 0 {
		return Lerp(progress, last.Center(), ref.Center()), width
	}

	start, next := refStep.Curve[0], refStep.Curve[0]
	for _, p := range refStep.Curve {
		if p.Offset >= timeInBlock {
			next = p
			break
		}
		start, next = p, p
	}
	if next.Offset == start.Offset {
		return start.Center * LaneCount, width
	}
	t := (timeInBlock - start.Offset) / (next.Offset - start.Offset)
	return Lerp(t, start.Center, next.Center) * LaneCount, width
}

// Span returns the lanes [left, right) a slide is judged on at the given time.
// The span is never narrower than one lane and never leaves the field.
func (n *Note) Span(now float64) (int, int) {
	if n.Category != Slide {
		return n.Lane, n.End()
	}
	center, width := n.Shape(now)
	left := int(math.Floor(center - width/2))
	right := int(math.Ceil(center + width/2))
	return clampSpan(left, right)
}

func clampSpan(left, right int) (int, int) {
	if left < 0 {
		left = 0
	}
	if left > LaneCount-1 {
		left = LaneCount - 1
	}
	if right > LaneCount {
		right = LaneCount
	}
	if right <= left {
		right = left + 1
	}
	return left, right
}
