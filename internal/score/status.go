package score

import "git.lost.host/meutraa/urchin/internal/game"

const DefaultGaugeMax = 100.0

// Status accumulates judgements for one play. Only the judge writes to it.
type Status struct {
	JusticeCritical uint64
	Justice         uint64
	Attack          uint64
	Miss            uint64
	Combo           uint64
	MaxCombo        uint64

	CurrentGauge float64
	GaugeMax     float64
	AllNotes     int // Every judgement the chart can produce
}

// Reset zeroes every counter and sizes the gauge share for a chart.
func (s *Status) Reset(allNotes int, gaugeMax float64) {
	*s = Status{AllNotes: allNotes, GaugeMax: gaugeMax}
}

// Share is the gauge worth of a single critical judgement.
func (s *Status) Share() float64 {
	return s.GaugeMax / float64(s.AllNotes)
}

// Factor scales the gauge share by tier.
func Factor(tier game.Tier) float64 {
	switch tier {
	case game.JusticeCritical:
		return 1
	case game.Justice:
		return 1 / 1.01
	case game.Attack:
		return 1 / 1.01 * 0.5
	}
	return 0
}

// Hit counts a successful judgement.
func (s *Status) Hit(tier game.Tier) {
	switch tier {
	case game.JusticeCritical:
		s.JusticeCritical++
	case game.Justice:
		s.Justice++
	case game.Attack:
		s.Attack++
	default:
		s.Break()
		return
	}
	s.Combo++
	if s.Combo > s.MaxCombo {
		s.MaxCombo = s.Combo
	}
	s.CurrentGauge += s.Share() * Factor(tier)
}

// Break counts a miss. The gauge is left alone.
func (s *Status) Break() {
	s.Miss++
	s.Combo = 0
}

// Penalize takes double the share off the gauge, for touched hazards.
func (s *Status) Penalize() {
	s.CurrentGauge -= s.Share() * 2
}

// Revoke takes back an optimistic critical that turned out to be a failure.
func (s *Status) Revoke() {
	if s.JusticeCritical > 0 {
		s.JusticeCritical--
	}
}

// Judged is the number of decisions made so far.
func (s *Status) Judged() uint64 {
	return s.JusticeCritical + s.Justice + s.Attack + s.Miss
}

// Accuracy is the weighted hit ratio over the judged notes, 0..1.
func (s *Status) Accuracy() float64 {
	judged := s.Judged()
	if judged == 0 {
		return 0
	}
	sum := float64(s.JusticeCritical)*Factor(game.JusticeCritical) +
		float64(s.Justice)*Factor(game.Justice) +
		float64(s.Attack)*Factor(game.Attack)
	return sum / float64(judged)
}

// Count returns the counter for a tier.
func (s *Status) Count(tier game.Tier) uint64 {
	switch tier {
	case game.JusticeCritical:
		return s.JusticeCritical
	case game.Justice:
		return s.Justice
	case game.Attack:
		return s.Attack
	}
	return s.Miss
}
