package game

// The number of slider lanes a chart is laid out on
const LaneCount = 16

// Unit is anything that can be judged on its own: a note or one of its steps.
type Unit struct {
	Time   float64 // Seconds from the start of the song
	Lane   int     // The leftmost slider lane
	Length int     // Lanes covered, starting at Lane

	// This is state, mutated by the judge
	Finished     bool // A decision was made, hit or miss
	Completed    bool // The whole sustained note is done
	HellChecking bool // Hazard note was passed, but can still be failed
}

// End returns the exclusive right edge of the lane span.
func (u *Unit) End() int {
	return u.Lane + u.Length
}

// Center returns the lane position in the middle of the span.
func (u *Unit) Center() float64 {
	return float64(u.Lane) + float64(u.Length)/2
}

type Note struct {
	Unit
	Category  Category
	Direction Direction   // Only used by Air notes
	Duration  float64     // Seconds, only used by sustained notes
	Steps     []*SubEvent // Ordered by time
}

type SubEvent struct {
	Unit
	Role Role

	// Control points of the slide segment that ends at this step
	Curve []CurvePoint
}

// Judged reports whether this step is ever judged on its own.
func (s *SubEvent) Judged() bool {
	return s.Role != Control && s.Role != Invisible
}

// Scorable reports whether the note contributes to the note total by itself.
// Air action heads are never judged, only their steps are.
func (n *Note) Scorable() bool {
	return n.Category != AirAction
}

// Processed is true when there is nothing left to look at on this note.
func (n *Note) Processed() bool {
	return n.Finished && len(n.Steps) == 0
}

// Count returns how many judgements this note produces over its lifetime.
func (n *Note) Count() int {
	count := 0
	if n.Scorable() {
		count++
	}
	if !n.Category.Sustained() {
		return count
	}
	for _, step := range n.Steps {
		switch step.Role {
		case Step, End, Injection:
			count++
		}
	}
	return count
}
