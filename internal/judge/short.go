package judge

import (
	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
)

func (p *Processor) checkTap(note *game.Note) (game.Tier, bool) {
	reltime := p.now - note.Time - p.adjusts.Slider
	if note.Finished || p.widths.early(reltime) {
		return 0, false
	}
	if p.widths.late(reltime) {
		p.miss(&note.Unit)
		return 0, false
	}
	for i := note.Lane; i < note.End(); i++ {
		if !p.state.Pressed(input.Sliders, i) {
			continue
		}
		if note.Category == game.ExTap {
			return p.award(&note.Unit, game.JusticeCritical), true
		}
		return p.hit(&note.Unit, reltime), true
	}
	return 0, false
}

// checkHell judges a hazard note. Not touching it is a pass: once the note
// reaches the judgement line untouched it is credited as critical, but
// touching it before the window closes turns it into a failure.
// Returns true on the tick the pass is credited.
func (p *Processor) checkHell(note *game.Note) bool {
	reltime := p.now - note.Time - p.adjusts.Slider
	if note.Finished || p.widths.early(reltime) {
		return false
	}
	if p.widths.late(reltime) {
		if note.HellChecking {
			// Passed and never touched
			p.settleHell(note)
		} else {
			// The window went by without the pass ever being seen
			p.failHell(note)
		}
		return false
	}

	for i := note.Lane; i < note.End(); i++ {
		if !p.state.Pressed(input.Sliders, i) {
			continue
		}
		if note.HellChecking {
			p.status.Revoke()
		}
		p.failHell(note)
		return false
	}

	if reltime >= 0 && !note.HellChecking {
		note.HellChecking = true
		p.status.Hit(game.JusticeCritical)
		p.logger.Debug("JC", "time", note.Time, "at", p.now, "hazard", true)
		return true
	}
	return false
}

func (p *Processor) settleHell(note *game.Note) {
	note.HellChecking = false
	note.Finished, note.Completed = true, true
}

func (p *Processor) failHell(note *game.Note) {
	p.settleHell(note)
	p.status.Break()
	p.status.Penalize()
	p.logger.Debug("M", "time", note.Time, "at", p.now, "hazard", true)
}

func (p *Processor) checkAir(note *game.Note) (game.Tier, bool) {
	reltime := (p.now - note.Time - p.adjusts.AirString) / p.adjusts.MultiplierAir
	if note.Finished || p.widths.early(reltime) {
		return 0, false
	}
	if p.widths.late(reltime) {
		p.miss(&note.Unit)
		return 0, false
	}

	if p.autoAir {
		if reltime < 0 {
			return 0, false
		}
	} else {
		channel := input.AirUp
		if note.Direction == game.Down {
			channel = input.AirDown
		}
		if !p.state.Pressed(input.Air, channel) {
			return 0, false
		}
	}
	return p.hit(&note.Unit, reltime), true
}
