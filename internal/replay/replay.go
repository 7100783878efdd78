package replay

import (
	"sort"
	"time"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/judge"
	"github.com/google/uuid"
)

// Channels 0 to 15 are the slider lanes, the air channels follow.
const Channels = game.LaneCount + input.AirChannels

// Input is a single channel changing between released and held.
type Input struct {
	Channel int
	Time    float64
}

func source(channel int) (input.Source, int) {
	if channel < game.LaneCount {
		return input.Sliders, channel
	}
	return input.Air, channel - game.LaneCount
}

// Settings are the judge settings a run was played with.
type Settings struct {
	Widths   judge.Widths
	Adjusts  judge.Adjusts
	AutoAir  bool
	GaugeMax float64
}

func SettingsOf(p *judge.Processor, autoAir bool, gaugeMax float64) Settings {
	return Settings{
		Widths:   p.Widths(),
		Adjusts:  p.Adjusts(),
		AutoAir:  autoAir,
		GaugeMax: gaugeMax,
	}
}

type History struct {
	ID       uuid.UUID
	Sum      string
	PlayedAt time.Time
	Settings Settings
	Inputs   []Input
}

// Recorder collects the input toggles of a run from the per tick snapshots.
type Recorder struct {
	sliders, air uint16
	inputs       []Input
}

func (r *Recorder) Record(now float64, snap *input.Snapshot) {
	sliders, air := snap.Bits(input.Sliders), snap.Bits(input.Air)
	r.toggles(now, 0, r.sliders^sliders, game.LaneCount)
	r.toggles(now, game.LaneCount, r.air^air, input.AirChannels)
	r.sliders, r.air = sliders, air
}

func (r *Recorder) toggles(now float64, base int, changed uint16, n int) {
	for i := 0; i < n; i++ {
		if changed&(1<<i) != 0 {
			r.inputs = append(r.inputs, Input{Channel: base + i, Time: now})
		}
	}
}

func (r *Recorder) Inputs() []Input {
	return r.inputs
}

func (r *Recorder) Reset() {
	*r = Recorder{}
}

type InputsCompact struct {
	Channel int
	Times   []float64
}

func compactInputs(inputs []Input) []InputsCompact {
	count := 0
	for _, i := range inputs {
		if i.Channel >= count {
			count = i.Channel + 1
		}
	}
	ins := make([]InputsCompact, count)
	for c := range ins {
		ins[c] = InputsCompact{Channel: c, Times: []float64{}}
	}
	for _, i := range inputs {
		ins[i.Channel].Times = append(ins[i.Channel].Times, i.Time)
	}
	return ins
}

// uncompactInputs restores the time order of the inputs, channels breaking ties.
func uncompactInputs(inputs []InputsCompact) []Input {
	ins := []Input{}
	for _, i := range inputs {
		for _, t := range i.Times {
			ins = append(ins, Input{Channel: i.Channel, Time: t})
		}
	}
	sort.SliceStable(ins, func(a, b int) bool {
		return ins[a].Time < ins[b].Time
	})
	return ins
}
