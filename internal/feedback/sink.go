package feedback

import (
	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/judge"
	"github.com/charmbracelet/log"
)

// Tee forwards every call to each sink in order.
type Tee []judge.Sink

func (t Tee) PlaySound(s judge.Sound) {
	for _, sink := range t {
		sink.PlaySound(s)
	}
}

func (t Tee) StopSound(s judge.Sound) {
	for _, sink := range t {
		sink.StopSound(s)
	}
}

func (t Tee) SpawnJudgeEffect(u *game.Unit, e judge.Effect, tier game.Tier) {
	for _, sink := range t {
		sink.SpawnJudgeEffect(u, e, tier)
	}
}

func (t Tee) RemoveSlideEffect() {
	for _, sink := range t {
		sink.RemoveSlideEffect()
	}
}

// Log writes feedback to a logger at debug level.
type Log struct {
	Logger *log.Logger
}

func (l Log) PlaySound(s judge.Sound) {
	l.Logger.Debug("play", "sound", s)
}

func (l Log) StopSound(s judge.Sound) {
	l.Logger.Debug("stop", "sound", s)
}

func (l Log) SpawnJudgeEffect(u *game.Unit, e judge.Effect, tier game.Tier) {
	l.Logger.Debug("effect", "effect", e, "tier", tier.Short(), "time", u.Time, "lane", u.Lane)
}

func (l Log) RemoveSlideEffect() {
	l.Logger.Debug("remove slide effects")
}
