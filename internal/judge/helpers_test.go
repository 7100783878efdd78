package judge

import (
	"math"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/score"
	"git.lost.host/meutraa/urchin/internal/testdata"
)

// judged makes the returned Status addressable for its pointer method.
func judged(s score.Status) uint64 { return s.Judged() }

type recorder struct {
	played  []Sound
	stopped []Sound
	effects []Effect
	tiers   []game.Tier
	removed int
}

func (r *recorder) PlaySound(s Sound) { r.played = append(r.played, s) }
func (r *recorder) StopSound(s Sound) { r.stopped = append(r.stopped, s) }
func (r *recorder) RemoveSlideEffect() { r.removed++ }

func (r *recorder) SpawnJudgeEffect(unit *game.Unit, effect Effect, tier game.Tier) {
	r.effects = append(r.effects, effect)
	r.tiers = append(r.tiers, tier)
}

func count(sounds []Sound, sound Sound) int {
	n := 0
	for _, s := range sounds {
		if s == sound {
			n++
		}
	}
	return n
}

// player drives a processor the way a host loop would
type player struct {
	p    *Processor
	s    input.Snapshot
	sink *recorder
}

func newPlayer(notes ...*game.Note) *player {
	sink := &recorder{}
	pl := &player{p: New(sink), sink: sink}
	pl.p.Reset(testdata.Chart(notes...))
	return pl
}

// tick updates at now with exactly the given lanes held
func (pl *player) tick(now float64, lanes ...int) {
	pl.s.Advance()
	pl.s.Release()
	for _, l := range lanes {
		pl.s.Set(input.Sliders, l, true)
	}
	pl.p.Update(now, &pl.s)
}

// air updates at now with exactly the given air channels held
func (pl *player) air(now float64, channels ...int) {
	pl.s.Advance()
	pl.s.Release()
	for _, c := range channels {
		pl.s.Set(input.Air, c, true)
	}
	pl.p.Update(now, &pl.s)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
