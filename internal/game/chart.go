package game

type Chart struct {
	Notes      []*Note // Ordered by start time
	Difficulty Difficulty
	Sum        string // Hash of the source the chart was loaded from

	NoteCount  int64 // Notes, not counting steps
	HoldCount  int64
	SlideCount int64
	HellCount  int64
}

// Total returns the number of judgements the chart produces.
func (c *Chart) Total() int {
	total := 0
	for _, n := range c.Notes {
		total += n.Count()
	}
	return total
}

// Length returns the time of the last judged event.
func (c *Chart) Length() float64 {
	last := 0.0
	for _, n := range c.Notes {
		end := n.Time + n.Duration
		for _, s := range n.Steps {
			if s.Time > end {
				end = s.Time
			}
		}
		if end > last {
			last = end
		}
	}
	return last
}

// Reset clears every judgement flag so the chart can be played again.
func (c *Chart) Reset() {
	for _, n := range c.Notes {
		n.Finished, n.Completed, n.HellChecking = false, false, false
		for _, s := range n.Steps {
			s.Finished, s.Completed, s.HellChecking = false, false, false
		}
	}
}

// Clone returns a deep copy with its own flags.
func (c *Chart) Clone() *Chart {
	nn := make([]*Note, len(c.Notes))
	for i, n := range c.Notes {
		nnn := *n
		nnn.Steps = make([]*SubEvent, len(n.Steps))
		for j, s := range n.Steps {
			ss := *s
			nnn.Steps[j] = &ss
		}
		nn[i] = &nnn
	}
	chart := *c
	chart.Notes = nn
	return &chart
}
