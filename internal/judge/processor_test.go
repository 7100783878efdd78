package judge

import (
	"testing"

	"git.lost.host/meutraa/urchin/internal/game"
	"git.lost.host/meutraa/urchin/internal/input"
	"git.lost.host/meutraa/urchin/internal/testdata"
)

func flags(c *game.Chart) []bool {
	var fs []bool
	for _, n := range c.Notes {
		fs = append(fs, n.Finished, n.Completed)
		for _, s := range n.Steps {
			fs = append(fs, s.Finished)
		}
	}
	return fs
}

func seekChart() *game.Chart {
	return testdata.Chart(
		testdata.Tap(1, 0, 4),
		testdata.Tap(2, 0, 4),
		testdata.Note(game.Hazard, 3, 0, 4),
		testdata.Sustained(game.Hold, 1.5, 4, 4,
			testdata.Step(game.Step, 2, 4, 4),
			testdata.Step(game.Invisible, 2.2, 4, 4),
			testdata.Step(game.End, 2.8, 4, 4),
		),
	)
}

func TestMoveForward(t *testing.T) {
	chart := seekChart()
	sink := &recorder{}
	p := New(sink)
	p.Reset(chart)
	p.Update(0.5, &input.Snapshot{})

	p.MovePosition(2)
	if p.Now() != 2.5 {
		t.Fatal("cursor at", p.Now())
	}

	// Sorted: tap 1, hold 1.5, tap 2, hazard 3
	hold := chart.Notes[1]
	var forwardTests = map[*game.Unit]bool{
		&chart.Notes[0].Unit: true,
		&hold.Unit:           true,
		&chart.Notes[2].Unit: true,
		&chart.Notes[3].Unit: false,
		&hold.Steps[0].Unit:  true,
		&hold.Steps[1].Unit:  false, // Invisible steps are left alone
		&hold.Steps[2].Unit:  false,
	}
	for unit, expected := range forwardTests {
		if unit.Finished != expected {
			t.Log("time    ", unit.Time)
			t.Log("expected", expected)
			t.Fail()
		}
	}

	if s := p.Status(); s.Judged() != 0 || s.Combo != 0 {
		t.Error("seeking must not score", s)
	}
	if count(sink.stopped, SoundHold) != 1 || count(sink.stopped, SoundSlide) != 1 || sink.removed != 1 {
		t.Error("seeking should silence the loops", sink.stopped)
	}
}

func TestMoveIsItsOwnInverse(t *testing.T) {
	chart := seekChart()
	before := flags(chart)

	p := New(nil)
	p.Reset(chart)
	p.Update(0.5, &input.Snapshot{})
	p.MovePosition(2)
	p.MovePosition(-2)

	after := flags(chart)
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("flag %d: %v became %v", i, before[i], after[i])
		}
	}
}

func TestMoveBackKeepsScore(t *testing.T) {
	pl := newPlayer(testdata.Tap(1, 0, 4), testdata.Tap(2, 0, 4))
	pl.tick(1, 0)
	pl.tick(2.5)
	before := pl.p.Status()

	pl.p.MovePosition(-2)
	if pl.p.Status() != before {
		t.Fatal("seeking changed the status")
	}
	// Both notes can be played again, on top of the old counters
	pl.tick(1, 0)
	s := pl.p.Status()
	if s.JusticeCritical != before.JusticeCritical+1 {
		t.Error("the note should be judged again", s)
	}
}

func TestMoveIntoHold(t *testing.T) {
	note := testdata.Sustained(game.Hold, 1, 0, 4,
		testdata.Step(game.Step, 1.5, 0, 4),
		testdata.Step(game.End, 2, 0, 4),
	)
	pl := newPlayer(note)
	pl.tick(0)
	pl.p.MovePosition(1.2)
	if !note.Finished || note.Steps[0].Finished {
		t.Fatal("head passed, step ahead")
	}

	pl.tick(1.5, 0)
	pl.tick(2, 0)
	if s := pl.p.Status(); s.JusticeCritical != 2 || s.Miss != 0 || !note.Completed {
		t.Error("the rest of the hold should be playable", s)
	}
}

func TestResetCountsNotes(t *testing.T) {
	chart := seekChart()
	p := New(nil, WithGaugeMax(60))
	p.Reset(chart)
	s := p.Status()
	// 2 taps, 1 hazard, head, step, end
	if s.AllNotes != 6 || s.GaugeMax != 60 || s.Judged() != 0 {
		t.Error("unexpected status after reset", s)
	}
}

func TestUpdateWithoutChart(t *testing.T) {
	p := New(nil)
	p.Update(1, &input.Snapshot{})
	p.MovePosition(1)
	if judged(p.Status()) != 0 {
		t.Error("nothing to judge")
	}
}

func TestIgnoreBadMultiplier(t *testing.T) {
	p := New(nil)
	p.SetJudgeAdjusts(0.01, 0.02, 0)
	if a := p.Adjusts(); a.MultiplierAir != 1 || a.Slider != 0.01 || a.AirString != 0.02 {
		t.Error("unexpected adjusts", a)
	}
}
