package feedback

import (
	"math"
	"time"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/judge"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

// Pitch of each sound, loops are lower and quieter
var pitches = map[judge.Sound]float64{
	judge.SoundTap:       880,
	judge.SoundExTap:     1320,
	judge.SoundFlick:     1760,
	judge.SoundAir:       1175,
	judge.SoundAirAction: 988,
	judge.SoundHold:      220,
	judge.SoundSlide:     330,
}

func looped(s judge.Sound) bool {
	return s == judge.SoundHold || s == judge.SoundSlide
}

// Beep plays synthesized tones for judgement feedback.
type Beep struct {
	mixer       *beep.Mixer
	loops       map[judge.Sound]*beep.Ctrl
	initialized bool
}

func NewBeep() *Beep {
	return &Beep{
		mixer: &beep.Mixer{},
		loops: map[judge.Sound]*beep.Ctrl{},
	}
}

// Init opens the audio device. Without it every call is silent.
func (b *Beep) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/60)); nil != err {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

func (b *Beep) PlaySound(s judge.Sound) {
	if !b.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if !looped(s) {
		b.mixer.Add(beep.Take(SampleRate.N(60*time.Millisecond), Tone(SampleRate, pitches[s], 0.3)))
		return
	}
	if ctrl, ok := b.loops[s]; ok {
		ctrl.Paused = false
		return
	}
	ctrl := &beep.Ctrl{Streamer: Tone(SampleRate, pitches[s], 0.1)}
	b.loops[s] = ctrl
	b.mixer.Add(ctrl)
}

func (b *Beep) StopSound(s judge.Sound) {
	if !b.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	if ctrl, ok := b.loops[s]; ok {
		ctrl.Paused = true
	}
}

func (b *Beep) SpawnJudgeEffect(*game.Unit, judge.Effect, game.Tier) {}

func (b *Beep) RemoveSlideEffect() {}

// Tone is an endless sine wave.
func Tone(rate beep.SampleRate, freq, volume float64) beep.Streamer {
	phase := 0.0
	step := freq / float64(rate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := math.Sin(2*math.Pi*phase) * volume
			samples[i][0], samples[i][1] = v, v
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	})
}
