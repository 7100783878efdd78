package render

import (
	"fmt"
	"strings"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/judge"
	"git.lost.host/meutraa/urchin/internal/score"
)

const laneWidth = 2 // Columns per lane light

// HUD is everything drawn for one frame.
type HUD struct {
	Title      string
	Difficulty game.Difficulty
	Now        float64
	Length     float64
	Status     score.Status
	State      input.State
}

func (r *DefaultRenderer) middle() (uint16, uint16) {
	return uint16(r.width / 2), uint16(r.height / 2)
}

func (r *DefaultRenderer) laneColumn(lane int) uint16 {
	mc, _ := r.middle()
	left := int(mc) - game.LaneCount*laneWidth/2
	return uint16(max(left, 1) + lane*laneWidth)
}

func (r *DefaultRenderer) sideColumn() uint16 {
	return uint16(max(int(r.laneColumn(0))-30, 2))
}

var airNames = [...]string{
	input.AirUp:     "up",
	input.AirDown:   "down",
	input.AirHold:   "hold",
	input.AirAction: "action",
}

// RenderHUD draws the lane lights, air lights and the status counters.
func (r *DefaultRenderer) RenderHUD(h HUD) {
	_, hitRow := r.middle()

	r.Fill(2, r.laneColumn(0), fmt.Sprintf("%s  [%s %s]", h.Title, h.Difficulty.Name, h.Difficulty.Level))
	if h.Length > 0 {
		width := game.LaneCount * laneWidth
		r.Fill(3, r.laneColumn(0), r.Theme.RenderGauge(h.Now/h.Length, width))
	}

	if nil != h.State {
		for lane := 0; lane < game.LaneCount; lane++ {
			r.Fill(hitRow, r.laneColumn(lane), r.Theme.RenderLane(lane, h.State.Held(input.Sliders, lane)))
		}
		col := r.laneColumn(0)
		for i, name := range airNames {
			r.Fill(hitRow+2, col, r.Theme.RenderAir(name, h.State.Held(input.Air, i)))
			col += uint16(len(name) + 2)
		}
	}

	s := h.Status
	side := r.sideColumn()
	gauge := 0.0
	if s.GaugeMax > 0 {
		gauge = s.CurrentGauge / s.GaugeMax
	}
	r.Fill(hitRow+4, r.laneColumn(0), r.Theme.RenderGauge(gauge, game.LaneCount*laneWidth))

	rows := []string{
		fmt.Sprintf("      Time:  %7.2f", h.Now),
		fmt.Sprintf("     Gauge:  %7.2f", s.CurrentGauge),
		fmt.Sprintf("     Combo:  %7v", s.Combo),
		fmt.Sprintf(" Max Combo:  %7v", s.MaxCombo),
		fmt.Sprintf("  Accuracy:  %6.2f%%", 100*s.Accuracy()),
		fmt.Sprintf("     Notes:  %7v", s.AllNotes),
	}
	for i, row := range rows {
		r.Fill(uint16(6+i), side, row)
	}
	for i, tier := range []game.Tier{game.JusticeCritical, game.Justice, game.Attack, game.Miss} {
		r.Fill(uint16(6+len(rows)+1+i), side, fmt.Sprintf("%s:  %6v", r.Theme.RenderTier(tier), s.Count(tier)))
	}
}

// The renderer is the visual half of the feedback, sounds are left to
// another sink.

func (r *DefaultRenderer) PlaySound(judge.Sound) {}

func (r *DefaultRenderer) StopSound(judge.Sound) {}

// SpawnJudgeEffect flashes the tier above the lanes of the unit.
func (r *DefaultRenderer) SpawnJudgeEffect(unit *game.Unit, effect judge.Effect, tier game.Tier) {
	_, hitRow := r.middle()
	r.addDecoration(&decoration{
		X:       r.laneColumn(0) + uint16(game.LaneCount*laneWidth/2) - 8,
		Y:       hitRow - 2,
		Content: r.Theme.RenderTier(tier),
		Frames:  r.FlashFrames,
	})
	r.addDecoration(&decoration{
		X:       r.laneColumn(unit.Lane),
		Y:       hitRow - 1,
		Content: strings.Repeat(markers[effect], max(unit.Length, 1)*laneWidth),
		Frames:  r.FlashFrames,
		Slide:   effect == judge.EffectSlideTap,
	})
}

var markers = map[judge.Effect]string{
	judge.EffectShortNormal: "*",
	judge.EffectShortEx:     "✦",
	judge.EffectSlideTap:    "~",
	judge.EffectAction:      "^",
}

// RemoveSlideEffect clears the markers left by slide steps.
func (r *DefaultRenderer) RemoveSlideEffect() {
	nd := r.decorations[:0]
	for _, d := range r.decorations {
		if d.Slide {
			r.clear(d)
			continue
		}
		nd = append(nd, d)
	}
	r.decorations = nd
}
