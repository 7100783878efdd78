package judge

import (
	"io"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/score"
	"github.com/charmbracelet/log"
)

// Processor judges a chart against controller input, one tick at a time.
// It is not safe for concurrent use: Update, MovePosition and the setters
// must all be called from the goroutine that owns the chart.
type Processor struct {
	widths   Widths
	adjusts  Adjusts
	autoAir  bool
	gaugeMax float64

	chart  *game.Chart // Owned by the session
	status score.Status
	sink   Sink
	logger *log.Logger

	// Only valid during Update
	now   float64
	state input.State

	wasInHold, wasInSlide bool
}

type Option func(*Processor)

func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

func WithAutoAir(auto bool) Option {
	return func(p *Processor) {
		p.autoAir = auto
	}
}

func WithGaugeMax(max float64) Option {
	return func(p *Processor) {
		p.gaugeMax = max
	}
}

func New(sink Sink, opts ...Option) *Processor {
	if nil == sink {
		sink = nopSink{}
	}
	p := &Processor{
		widths:   DefaultWidths,
		adjusts:  DefaultAdjusts,
		gaugeMax: score.DefaultGaugeMax,
		sink:     sink,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Processor) SetAutoAir(auto bool) {
	p.autoAir = auto
}

func (p *Processor) SetJudgeWidths(jc, j, a float64) {
	p.widths = Widths{JusticeCritical: jc, Justice: j, Attack: a}
}

func (p *Processor) SetJudgeAdjusts(slider, air, multiplier float64) {
	if multiplier <= 0 {
		p.logger.Warn("ignoring air multiplier", "multiplier", multiplier)
		multiplier = 1
	}
	p.adjusts = Adjusts{Slider: slider, AirString: air, MultiplierAir: multiplier}
}

func (p *Processor) Widths() Widths {
	return p.widths
}

func (p *Processor) Adjusts() Adjusts {
	return p.adjusts
}

// Reset binds the processor to a chart and zeroes the status.
// The chart must contain at least one judged note.
func (p *Processor) Reset(chart *game.Chart) {
	p.chart = chart
	p.status.Reset(chart.Total(), p.gaugeMax)
	p.now = 0
	p.wasInHold, p.wasInSlide = false, false
	p.logger.Debug("reset", "notes", p.status.AllNotes)
}

// Status returns a copy of the current counters.
func (p *Processor) Status() score.Status {
	return p.status
}

// Now is the time of the last update or seek.
func (p *Processor) Now() float64 {
	return p.now
}

// Update judges every note against the state of the controller at now.
func (p *Processor) Update(now float64, state input.State) {
	if nil == p.chart {
		return
	}
	p.now, p.state = now, state

	inHold, inSlide := false, false
	for _, note := range p.chart.Notes {
		engaged := p.process(note)
		switch note.Category {
		case game.Hold:
			inHold = inHold || engaged
		case game.Slide:
			inSlide = inSlide || engaged
		}
	}

	if !p.wasInSlide && inSlide {
		p.sink.PlaySound(SoundSlide)
	}
	if p.wasInSlide && !inSlide {
		p.sink.StopSound(SoundSlide)
	}
	if !p.wasInHold && inHold {
		p.sink.PlaySound(SoundHold)
	}
	if p.wasInHold && !inHold {
		p.sink.StopSound(SoundHold)
	}
	p.wasInHold, p.wasInSlide = inHold, inSlide
	p.state = nil
}

// MovePosition jumps the cursor by relative seconds. Notes the cursor moved
// past are marked finished, notes it moved back before are made judgeable
// again. Counters are not touched.
func (p *Processor) MovePosition(relative float64) {
	newTime := p.now + relative

	p.wasInHold, p.wasInSlide = false, false
	p.sink.StopSound(SoundHold)
	p.sink.StopSound(SoundSlide)
	p.sink.RemoveSlideEffect()

	if nil != p.chart {
		for _, note := range p.chart.Notes {
			reposition(note, newTime, relative)
		}
	}

	p.logger.Info("moved", "from", p.now, "to", newTime)
	p.now = newTime
}

func reposition(note *game.Note, newTime, relative float64) {
	if !note.Category.Sustained() {
		if relative >= 0 {
			if note.Time <= newTime {
				note.Finished = true
			}
		} else if note.Time >= newTime {
			note.Finished, note.Completed, note.HellChecking = false, false, false
		}
		return
	}

	if note.Time <= newTime {
		note.Finished = true
	} else if relative < 0 {
		note.Finished = false
	}
	for _, step := range note.Steps {
		if !step.Judged() {
			continue
		}
		if relative >= 0 {
			if step.Time <= newTime {
				step.Finished = true
			}
		} else if step.Time >= newTime {
			step.Finished = false
			note.Completed = false
		}
	}
}

func (p *Processor) process(note *game.Note) bool {
	if note.Processed() {
		return false
	}

	switch note.Category {
	case game.Hold, game.Slide:
		return p.checkSustained(note)
	case game.AirAction:
		p.checkAirAction(note)
	case game.Air:
		if tier, ok := p.checkAir(note); ok {
			p.sink.PlaySound(SoundAir)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortNormal, tier)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortEx, tier)
		}
	case game.Tap, game.Flick:
		if tier, ok := p.checkTap(note); ok {
			sound := SoundTap
			if note.Category == game.Flick {
				sound = SoundFlick
			}
			p.sink.PlaySound(sound)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortNormal, tier)
		}
	case game.ExTap:
		if tier, ok := p.checkTap(note); ok {
			p.sink.PlaySound(SoundExTap)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortNormal, tier)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortEx, tier)
		}
	case game.Hazard:
		if p.checkHell(note) {
			p.sink.PlaySound(SoundTap)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortNormal, game.JusticeCritical)
		}
	}
	return false
}

// scan reports whether any lane in [left, right) is held, was just pressed,
// or was just released.
func (p *Processor) scan(left, right int) (held, trigger, release bool) {
	for i := left; i < right; i++ {
		current := p.state.Held(input.Sliders, i)
		held = held || current
		trigger = trigger || p.state.Pressed(input.Sliders, i)
		release = release || (p.state.HeldLast(input.Sliders, i) && !current)
	}
	return held, trigger, release
}

func (p *Processor) hit(unit *game.Unit, reltime float64) game.Tier {
	return p.award(unit, p.widths.Classify(reltime))
}

func (p *Processor) award(unit *game.Unit, tier game.Tier) game.Tier {
	unit.Finished = true
	p.status.Hit(tier)
	p.logger.Debug(tier.Short(), "time", unit.Time, "at", p.now, "combo", p.status.Combo)
	return tier
}

func (p *Processor) miss(unit *game.Unit) {
	unit.Finished = true
	p.status.Break()
	p.logger.Debug("M", "time", unit.Time, "at", p.now)
}
