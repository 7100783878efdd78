package input

import (
	"fmt"

	"git.lost.host/meutraa/urchin/internal/game"
	"github.com/eiannone/keyboard"
)

type Command uint8

const (
	None Command = iota
	Quit
	SeekBack
	SeekForward
)

// Keyboard turns terminal key events into controller snapshots.
// Terminals only report presses (and their auto repeat), so a key counts as
// held until Grace seconds have passed without another event for it.
type Keyboard struct {
	events <-chan keyboard.KeyEvent
	lanes  map[rune][2]int
	air    map[rune]int
	Grace  float64

	seen [2][game.LaneCount]float64
	down [2][game.LaneCount]bool
}

// NewKeyboard spreads keys evenly over the lanes, left to right. airKeys are
// the up, down and action keys in that order.
func NewKeyboard(events <-chan keyboard.KeyEvent, keys, airKeys string, grace float64) (*Keyboard, error) {
	ks, as := []rune(keys), []rune(airKeys)
	if len(ks) == 0 || len(ks) > game.LaneCount || game.LaneCount%len(ks) != 0 {
		return nil, fmt.Errorf("unable to map %d keys onto %d lanes", len(ks), game.LaneCount)
	}
	if len(as) != 3 {
		return nil, fmt.Errorf("expected 3 air keys, got %d", len(as))
	}

	k := &Keyboard{
		events: events,
		lanes:  map[rune][2]int{},
		air:    map[rune]int{as[0]: AirUp, as[1]: AirDown, as[2]: AirAction},
		Grace:  grace,
	}
	width := game.LaneCount / len(ks)
	for i, r := range ks {
		k.lanes[r] = [2]int{i * width, (i + 1) * width}
	}
	return k, nil
}

// Poll drains the pending key events into snap for the tick at now.
func (k *Keyboard) Poll(now float64, snap *Snapshot) ([]Command, error) {
	var commands []Command
	for drained := false; !drained; {
		select {
		case ev, ok := <-k.events:
			if !ok {
				return append(commands, Quit), nil
			}
			if nil != ev.Err {
				return commands, fmt.Errorf("unable to read key: %w", ev.Err)
			}
			if c := k.apply(now, ev); c != None {
				commands = append(commands, c)
			}
		default:
			drained = true
		}
	}

	snap.Advance()
	for i := 0; i < game.LaneCount; i++ {
		snap.Set(Sliders, i, k.held(Sliders, i, now))
	}
	hold := false
	for i := 0; i < AirChannels; i++ {
		if i == AirHold {
			continue
		}
		held := k.held(Air, i, now)
		hold = hold || held
		snap.Set(Air, i, held)
	}
	snap.Set(Air, AirHold, hold)
	return commands, nil
}

func (k *Keyboard) held(src Source, i int, now float64) bool {
	since := now - k.seen[src][i]
	return k.down[src][i] && since >= 0 && since < k.Grace
}

// Reset forgets every key seen so far, for when the clock jumps.
func (k *Keyboard) Reset() {
	k.seen = [2][game.LaneCount]float64{}
	k.down = [2][game.LaneCount]bool{}
}

func (k *Keyboard) apply(now float64, ev keyboard.KeyEvent) Command {
	switch {
	case ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC:
		return Quit
	case ev.Rune == '[':
		return SeekBack
	case ev.Rune == ']':
		return SeekForward
	}
	if span, ok := k.lanes[ev.Rune]; ok {
		for i := span[0]; i < span[1]; i++ {
			k.seen[Sliders][i] = now
			k.down[Sliders][i] = true
		}
	} else if ch, ok := k.air[ev.Rune]; ok {
		k.seen[Air][ch] = now
		k.down[Air][ch] = true
	}
	return None
}
