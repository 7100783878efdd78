package judge

import (
	"math"

	"git.lost.host/meutraa/urchin/internal/game"
)

// Widths are the judgement radii in seconds, narrowest first.
// Anything further than Attack from a note is either too early or a miss.
type Widths struct {
	JusticeCritical float64
	Justice         float64
	Attack          float64
}

// Adjusts compensate for latency differences between input methods.
type Adjusts struct {
	Slider        float64 // Subtracted from lane note timings
	AirString     float64 // Subtracted from air note timings
	MultiplierAir float64 // Divides air note timings, widening their windows
}

var (
	DefaultWidths  = Widths{JusticeCritical: 0.033, Justice: 0.066, Attack: 0.084}
	DefaultAdjusts = Adjusts{Slider: 0, AirString: 0, MultiplierAir: 1}
)

func (w Widths) early(reltime float64) bool {
	return reltime < -w.Attack
}

func (w Widths) late(reltime float64) bool {
	return reltime > w.Attack
}

// Classify returns the tier for a timing error, early or late.
func (w Widths) Classify(reltime float64) game.Tier {
	d := math.Abs(reltime)
	switch {
	case d <= w.JusticeCritical:
		return game.JusticeCritical
	case d <= w.Justice:
		return game.Justice
	case d <= w.Attack:
		return game.Attack
	}
	return game.Miss
}
