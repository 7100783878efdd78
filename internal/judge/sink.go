package judge

import "git.lost.host/meutraa/urchin/internal/game"

type Sound uint8

const (
	SoundTap Sound = iota
	SoundExTap
	SoundFlick
	SoundAir
	SoundAirAction
	SoundHold  // Looped while any hold is engaged
	SoundSlide // Looped while any slide is engaged
)

type Effect uint8

const (
	EffectShortNormal Effect = iota
	EffectShortEx
	EffectSlideTap
	EffectAction
)

// Sink receives the feedback the judge wants played or shown.
// Calls are fire and forget and must return immediately.
type Sink interface {
	PlaySound(sound Sound)
	StopSound(sound Sound)
	SpawnJudgeEffect(unit *game.Unit, effect Effect, tier game.Tier)
	RemoveSlideEffect()
}

type nopSink struct{}

func (nopSink) PlaySound(Sound)                              {}
func (nopSink) StopSound(Sound)                              {}
func (nopSink) SpawnJudgeEffect(*game.Unit, Effect, game.Tier) {}
func (nopSink) RemoveSlideEffect()                           {}

var soundNames = [...]string{"tap", "extap", "flick", "air", "airaction", "hold", "slide"}

func (s Sound) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

var effectNames = [...]string{"short", "short-ex", "slide-tap", "action"}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}
