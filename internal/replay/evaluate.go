package replay

import (
	"math"
	"sort"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/judge"
	"git.lost.host/meutraa/urchin/internal/score"
)

// DefaultPeriod is the tick period used when none is given.
const DefaultPeriod = 0.001

// Horizon is the time by which every note of the chart has been decided
// under the settings.
func Horizon(c *game.Chart, s Settings) float64 {
	late := s.Widths.Attack*max(s.Adjusts.MultiplierAir, 1) +
		max(math.Abs(s.Adjusts.Slider), math.Abs(s.Adjusts.AirString))
	return c.Length() + late + 2
}

// Evaluate judges a copy of the chart against recorded inputs, ticking every
// period seconds plus once at every input. The chart itself is left untouched.
func Evaluate(chart *game.Chart, h History, period float64, opts ...judge.Option) score.Status {
	if period <= 0 {
		period = DefaultPeriod
	}
	c := chart.Clone()
	c.Reset()

	s := h.Settings
	opts = append([]judge.Option{judge.WithAutoAir(s.AutoAir), judge.WithGaugeMax(s.GaugeMax)}, opts...)
	p := judge.New(nil, opts...)
	p.SetJudgeWidths(s.Widths.JusticeCritical, s.Widths.Justice, s.Widths.Attack)
	p.SetJudgeAdjusts(s.Adjusts.Slider, s.Adjusts.AirString, s.Adjusts.MultiplierAir)
	p.Reset(c)

	inputs := make([]Input, len(h.Inputs))
	copy(inputs, h.Inputs)
	sort.SliceStable(inputs, func(a, b int) bool {
		return inputs[a].Time < inputs[b].Time
	})

	end := Horizon(c, s)

	var snap input.Snapshot
	k, i := 0, 0
	for {
		tick := float64(k) * period
		if i < len(inputs) && inputs[i].Time < tick {
			tick = inputs[i].Time
		} else {
			k++
		}
		if tick > end && i == len(inputs) {
			break
		}

		snap.Advance()
		for ; i < len(inputs) && inputs[i].Time <= tick; i++ {
			if inputs[i].Channel < 0 || inputs[i].Channel >= Channels {
				continue
			}
			src, index := source(inputs[i].Channel)
			snap.Set(src, index, !snap.Held(src, index))
		}
		p.Update(tick, &snap)
	}
	return p.Status()
}
