package testdata

import (
	"sort"

	"git.lost.host/meutraa/urchin/internal/game"
)

func Note(c game.Category, time float64, lane, length int) *game.Note {
	return &game.Note{
		Unit:     game.Unit{Time: time, Lane: lane, Length: length},
		Category: c,
	}
}

func Tap(time float64, lane, length int) *game.Note {
	return Note(game.Tap, time, lane, length)
}

func Air(time float64, lane, length int, dir game.Direction) *game.Note {
	n := Note(game.Air, time, lane, length)
	n.Direction = dir
	return n
}

// Sustained builds a hold, slide or air action lasting until its last step.
func Sustained(c game.Category, time float64, lane, length int, steps ...*game.SubEvent) *game.Note {
	n := Note(c, time, lane, length)
	n.Steps = steps
	if len(steps) > 0 {
		n.Duration = steps[len(steps)-1].Time - time
	}
	return n
}

func Step(role game.Role, time float64, lane, length int) *game.SubEvent {
	return &game.SubEvent{
		Unit: game.Unit{Time: time, Lane: lane, Length: length},
		Role: role,
	}
}

func Chart(notes ...*game.Note) *game.Chart {
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Time < notes[j].Time })
	return &game.Chart{
		Notes:      notes,
		NoteCount:  int64(len(notes)),
		Difficulty: game.Difficulty{Name: "test", Level: "1"},
	}
}
