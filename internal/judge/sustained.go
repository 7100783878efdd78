package judge

import (
	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
)

// checkSustained judges holds and slides: first the head, then one pending
// step per tick. Returns whether the note is engaged, i.e. held while the
// note is on the judgement line.
func (p *Processor) checkSustained(note *game.Note) bool {
	reltime := p.now - note.Time - p.adjusts.Slider
	if p.widths.early(reltime) || note.Completed {
		return false
	}

	left, right := note.Span(p.now)
	held, trigger, release := p.scan(left, right)
	engaged := held && reltime < note.Duration+p.widths.Attack

	if !note.Finished {
		if p.widths.late(reltime) {
			p.miss(&note.Unit)
		} else if trigger {
			tier := p.hit(&note.Unit, reltime)
			p.sink.PlaySound(SoundTap)
			p.sink.SpawnJudgeEffect(&note.Unit, EffectShortNormal, tier)
		}
		return engaged
	}

	for _, step := range note.Steps {
		if step.Finished || !step.Judged() {
			continue
		}

		judgeTime := p.now - step.Time - p.adjusts.Slider
		switch {
		case p.widths.early(judgeTime):
		case p.widths.late(judgeTime):
			p.miss(&step.Unit)
			if step.Role == game.End {
				note.Completed = true
			}
		case judgeTime >= 0 && held:
			p.judgeStep(note, step, judgeTime)
		case step.Role == game.End && release:
			// Letting go right at the end completes the gesture
			p.judgeStep(note, step, judgeTime)
		}
		return engaged
	}
	return engaged
}

func (p *Processor) judgeStep(note *game.Note, step *game.SubEvent, judgeTime float64) {
	tier := p.hit(&step.Unit, judgeTime)
	if step.Role == game.Injection {
		return
	}
	p.sink.PlaySound(SoundTap)
	p.sink.SpawnJudgeEffect(&step.Unit, EffectSlideTap, tier)
	if step.Role == game.End {
		note.Completed = true
	}
}

// checkAirAction judges the steps of an air action in order. Injections are
// scored silently while the air is held, the other steps need an air action.
func (p *Processor) checkAirAction(note *game.Note) bool {
	if note.Completed {
		return false
	}

	holding := p.autoAir || p.state.Held(input.Air, input.AirHold)
	for _, step := range note.Steps {
		if step.Finished || !step.Judged() {
			continue
		}

		reltime := p.now - step.Time - p.adjusts.AirString
		if p.widths.early(reltime) {
			return false
		}
		if p.widths.late(reltime) {
			p.miss(&step.Unit)
			if step.Role == game.End {
				note.Completed = true
			}
			return false
		}

		if step.Role == game.Injection {
			if reltime >= 0 && holding {
				p.hit(&step.Unit, reltime)
				return true
			}
			return false
		}

		action := p.state.Pressed(input.Air, input.AirAction)
		if !action && !(p.autoAir && reltime >= 0) {
			return false
		}
		tier := p.hit(&step.Unit, reltime)
		p.sink.PlaySound(SoundAirAction)
		p.sink.SpawnJudgeEffect(&step.Unit, EffectAction, tier)
		if step.Role == game.End {
			note.Completed = true
		}
		return true
	}
	return false
}
