package input

import "git.lost.host/meutraa/urchin/internal/game"

type Source uint8

const (
	Sliders Source = iota // One channel per lane
	Air                   // Indexed by the Air* channels
)

// Air channels
const (
	AirUp = iota
	AirDown
	AirHold
	AirAction
	AirChannels
)

// State is what the judge can ask about the controller on a given tick.
type State interface {
	// Held is true while the channel is down
	Held(src Source, index int) bool
	// Pressed is true only on the tick the channel went down
	Pressed(src Source, index int) bool
	// HeldLast is the previous tick's Held
	HeldLast(src Source, index int) bool
}

func channels(src Source) int {
	if src == Air {
		return AirChannels
	}
	return game.LaneCount
}
